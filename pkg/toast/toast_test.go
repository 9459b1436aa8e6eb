package toast

import (
	"testing"

	"github.com/vango-dev/reportdemo/pkg/vdom"
)

func TestSuccessNode(t *testing.T) {
	node := Success("Tu app está funcionando correctamente!")

	if node.Tag != "div" {
		t.Fatalf("tag = %q, want div", node.Tag)
	}
	if node.Props["class"] != "toast toast-success" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if node.Props["role"] != "status" {
		t.Errorf("role = %v, want status", node.Props["role"])
	}
	if node.Props["data-level"] != "success" {
		t.Errorf("data-level = %v", node.Props["data-level"])
	}
	if got := vdom.TextContent(node); got != "✓Tu app está funcionando correctamente!" {
		t.Errorf("text = %q", got)
	}
}

func TestNodeLevels(t *testing.T) {
	tests := []struct {
		level Type
		icon  string
		role  string
		live  string
	}{
		{TypeSuccess, "✓", "status", "polite"},
		{TypeError, "✗", "alert", "assertive"},
		{TypeWarning, "⚠", "status", "polite"},
		{TypeInfo, "ℹ", "status", "polite"},
	}
	for _, tt := range tests {
		node := Node(tt.level, "m")
		if node.Props["data-level"] != string(tt.level) {
			t.Errorf("%s: data-level = %v", tt.level, node.Props["data-level"])
		}
		if node.Props["role"] != tt.role || node.Props["aria-live"] != tt.live {
			t.Errorf("%s: role=%v aria-live=%v", tt.level, node.Props["role"], node.Props["aria-live"])
		}
		if Icon(tt.level) != tt.icon {
			t.Errorf("%s: icon = %q, want %q", tt.level, Icon(tt.level), tt.icon)
		}
	}
}
