package report

import (
	"errors"
	"fmt"
	"io"
)

// Surface receives rendered report elements in order.
//
// Implementations may write each element immediately or buffer them until
// Close. A Surface is used by one render at a time.
type Surface interface {
	WriteHeading(text string) error
	WriteText(text string) error
	WriteTable(t *Frame) error
	WriteSuccess(text string) error
}

// Kind identifies the type of a report element.
type Kind string

const (
	KindHeading Kind = "heading"
	KindText    Kind = "text"
	KindTable   Kind = "table"
	KindSuccess Kind = "success"
)

// Kinds lists every element kind in a stable order.
var Kinds = []Kind{KindHeading, KindText, KindTable, KindSuccess}

// Block is one element of a Document. Table is set only for KindTable,
// Text for every other kind.
type Block struct {
	Kind  Kind
	Text  string
	Table *Frame
}

// Document is an ordered list of blocks.
type Document struct {
	Blocks []Block
}

// Heading appends a heading block and returns the document.
func (d *Document) Heading(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: KindHeading, Text: text})
	return d
}

// Text appends a text block and returns the document.
func (d *Document) Text(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: KindText, Text: text})
	return d
}

// Table appends a table block and returns the document.
func (d *Document) Table(t *Frame) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: KindTable, Table: t})
	return d
}

// Success appends a success block and returns the document.
func (d *Document) Success(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: KindSuccess, Text: text})
	return d
}

// ErrUnknownBlock is returned when a document holds a block of unknown kind.
var ErrUnknownBlock = errors.New("report: unknown block kind")

// Render writes every block to s in order. The first failing write stops
// rendering; the error names the index and kind of the failed block.
func (d *Document) Render(s Surface) error {
	for i, b := range d.Blocks {
		var err error
		switch b.Kind {
		case KindHeading:
			err = s.WriteHeading(b.Text)
		case KindText:
			err = s.WriteText(b.Text)
		case KindTable:
			err = s.WriteTable(b.Table)
		case KindSuccess:
			err = s.WriteSuccess(b.Text)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownBlock, b.Kind)
		}
		if err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}
	return nil
}

// Run renders the demo report to s and then closes s if it implements
// io.Closer. Close is called even when rendering fails; the render error
// wins over the close error.
func Run(s Surface) (err error) {
	if c, ok := s.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close surface: %w", cerr)
			}
		}()
	}
	return Demo().Render(s)
}
