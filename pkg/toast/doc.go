// Package toast builds the styled notice banners shown at the end of a
// report: success, error, warning and info.
//
//	body := vdom.Main(
//	    vdom.H1("Report"),
//	    toast.Success("Tu app está funcionando correctamente!"),
//	)
package toast
