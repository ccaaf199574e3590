/*
File   : dang/repl/repl.go
Package: repl

Package repl implements the interactive Read-Eval-Print Loop for Dang. Each
line read is parsed and evaluated against one Environment that persists for
the whole session, so later lines can refer to whatever earlier lines
established — though since let is a documented no-op (see package eval),
no line installs a binding in it.

Grounded on the teacher's repl/repl.go: the Repl struct carrying banner,
version, and prompt text, readline for line editing and history, and
panic recovery wrapped around every evaluated line so a bug in one line
never kills the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dang-lang/dang/environment"
	"github.com/dang-lang/dang/eval"
	"github.com/dang-lang/dang/internal/diagnostics"
	"github.com/dang-lang/dang/lexer"
	"github.com/dang-lang/dang/parser"
)

// Repl holds the cosmetic configuration of an interactive session: its
// banner, version/author/license strings, separator line, and prompt.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner and usage hints to w.
func (r *Repl) PrintBanner(w io.Writer) {
	diagnostics.Line(w, r.Line)
	diagnostics.Banner(w, r.Banner)
	diagnostics.Line(w, r.Line)
	diagnostics.Info(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	diagnostics.Line(w, r.Line)
	diagnostics.Info(w, "Welcome to Dang!")
	diagnostics.Info(w, "Type your code and press enter")
	diagnostics.Info(w, "Type '.exit' to quit")
	diagnostics.Info(w, "Use up/down arrows to navigate command history")
	diagnostics.Line(w, r.Line)
}

// Start runs the REPL loop against writer until the user exits or input
// ends. reader is accepted for interface symmetry with file mode, but
// readline reads from stdin directly and ignores it.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine parses and evaluates one line against env, recovering from any
// panic so a single bad line never ends the session.
func (r *Repl) evalLine(w io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			diagnostics.PrintRuntimeError(w, recovered)
		}
	}()

	p := parser.New(lexer.New(line))
	prog := p.ParseProgram()

	if diags := p.Diagnostics(); len(diags) > 0 {
		diagnostics.PrintParseDiagnostics(w, diags)
		return
	}

	result := eval.Eval(prog, env)
	diagnostics.PrintResult(w, result)
}
