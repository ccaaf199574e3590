/*
File   : dang/internal/diagnostics/diagnostics.go
Package: diagnostics

Package diagnostics renders parser diagnostics and evaluation errors to an
io.Writer in color, the way the teacher's repl and main packages do inline
with redColor.Fprintf calls of their own. This package pulls that one
concern out into its own home so cmd/dang's REPL mode and file mode share a
single renderer instead of each repeating the color choices.
*/
package diagnostics

import (
	"io"

	"github.com/fatih/color"

	"github.com/dang-lang/dang/object"
	"github.com/dang-lang/dang/parser"
)

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	infoColor   = color.New(color.FgCyan)
	bannerColor = color.New(color.FgGreen)
	lineColor   = color.New(color.FgBlue)
)

// PrintParseDiagnostics writes one red line per diagnostic in diags.
func PrintParseDiagnostics(w io.Writer, diags []parser.Diagnostic) {
	for _, d := range diags {
		errorColor.Fprintf(w, "[PARSE ERROR] %s\n", d.String())
	}
}

// PrintResult writes obj to w: errors in red, everything else in yellow.
// A nil obj prints nothing. (An empty program evaluates to NULL, not nil,
// and prints "null".)
func PrintResult(w io.Writer, obj object.Object) {
	if obj == nil {
		return
	}
	if object.IsError(obj) {
		errorColor.Fprintf(w, "%s\n", obj.Inspect())
		return
	}
	resultColor.Fprintf(w, "%s\n", obj.Inspect())
}

// PrintRuntimeError writes a recovered panic value to w in red, the way
// the REPL's executeWithRecovery reports a panic without exiting.
func PrintRuntimeError(w io.Writer, recovered interface{}) {
	errorColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
}

// Info writes an informational line to w in cyan.
func Info(w io.Writer, msg string) {
	infoColor.Fprintf(w, "%s\n", msg)
}

// Banner writes msg to w in green, used for the REPL's startup banner.
func Banner(w io.Writer, msg string) {
	bannerColor.Fprintf(w, "%s\n", msg)
}

// Line writes msg to w in blue, used for the REPL's separator rules.
func Line(w io.Writer, msg string) {
	lineColor.Fprintf(w, "%s\n", msg)
}
