// Package report renders the static demo report onto a Surface.
//
// A Surface is the output sink: an HTML page, a terminal, a Markdown
// document or an in-memory Recorder. Rendering is a fixed, sequential list
// of writes:
//
//	heading  "Demo Streamlit en Snowflake 🚀"
//	text     "¡Hola desde Snowflake!"
//	text     "Este es un cambio en la aplicación"
//	table    SampleTable (Columna1, Columna2; 5 rows)
//	success  "Tu app está funcionando correctamente!"
//
// Usage:
//
//	s := report.NewTerminalSurface(os.Stdout, report.TerminalOptions{})
//	if err := report.Run(s); err != nil {
//	    return err
//	}
//
// Rendering is deterministic: the same surface configuration produces the
// same bytes on every run.
package report
