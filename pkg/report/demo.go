package report

// Literal content of the demo report.
const (
	DemoTitle   = "Demo Streamlit en Snowflake 🚀"
	DemoGreet   = "¡Hola desde Snowflake!"
	DemoChange  = "Este es un cambio en la aplicación"
	DemoSuccess = "Tu app está funcionando correctamente!"
)

// Demo returns the demo report: a heading, two text lines, the sample
// table and a success message, in that order.
func Demo() *Document {
	d := &Document{}
	return d.
		Heading(DemoTitle).
		Text(DemoGreet).
		Text(DemoChange).
		Table(SampleTable()).
		Success(DemoSuccess)
}
