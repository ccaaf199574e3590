/*
File   : dang/cmd/dang/main.go
Package: main

The dang executable has two modes: run a source file given as an argument,
or fall into an interactive REPL when no argument is given. Grounded on
the teacher's main/main.go — the positional-argument dispatch, the
VERSION/AUTHOR/LICENSE/BANNER/PROMPT globals, and --help/--version flags —
trimmed to this language's actual surface (no server mode: SPEC_FULL.md
has no networking component for the REPL to expose).
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dang-lang/dang/ast"
	"github.com/dang-lang/dang/environment"
	"github.com/dang-lang/dang/eval"
	"github.com/dang-lang/dang/internal/diagnostics"
	"github.com/dang-lang/dang/lexer"
	"github.com/dang-lang/dang/object"
	"github.com/dang-lang/dang/parser"
	"github.com/dang-lang/dang/repl"
)

var (
	version = "v0.1.0"
	author  = "dang"
	license = "MIT"
	prompt  = "dang >>> "
	banner  = `
  ____
 |  _ \  __ _ _ __   __ _
 | | | |/ _' | '_ \ / _' |
 | |_| | (_| | | | | (_| |
 |____/ \__,_|_| |_|\__, |
                     |___/
`
	line = "----------------------------------------------------------------"
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repler := repl.New(banner, version, author, line, license, prompt)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "-ast":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "[USAGE ERROR] -ast requires a file argument")
			os.Exit(1)
		}
		source, err := os.ReadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", args[1], err)
			os.Exit(1)
		}
		os.Exit(run(string(source), true, os.Stdout, os.Stderr))
	default:
		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", args[0], err)
			os.Exit(1)
		}
		os.Exit(run(string(source), false, os.Stdout, os.Stderr))
	}
}

func showHelp() {
	diagnostics.Info(os.Stdout, "Dang - a small tree-walking interpreter")
	diagnostics.Info(os.Stdout, "")
	diagnostics.Info(os.Stdout, "USAGE:")
	fmt.Println("  dang                    Start interactive REPL mode")
	fmt.Println("  dang <path-to-file>     Execute a Dang source file")
	fmt.Println("  dang -ast <path>        Execute a file, printing its AST first")
	fmt.Println("  dang --help             Display this help message")
	fmt.Println("  dang --version          Display version information")
}

func showVersion() {
	fmt.Printf("Dang %s (%s)\n", version, license)
}

// run parses and evaluates source, writing the AST dump (if printAST),
// parse diagnostics, and any evaluation error to the given writers. It
// returns 0 on success, 1 on a parse or evaluation failure. A panic
// during evaluation is recovered and reported the same way the REPL
// reports one, rather than crashing the process.
func run(source string, printAST bool, stdout, stderr io.Writer) (exitCode int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			diagnostics.PrintRuntimeError(stderr, recovered)
			exitCode = 1
		}
	}()

	p := parser.New(lexer.New(source))
	prog := p.ParseProgram()

	if diags := p.Diagnostics(); len(diags) > 0 {
		diagnostics.PrintParseDiagnostics(stderr, diags)
		return 1
	}

	if printAST {
		fmt.Fprintln(stdout, ast.Print(prog))
	}

	result := eval.Eval(prog, environment.New())
	if object.IsError(result) {
		diagnostics.PrintResult(stderr, result)
		return 1
	}

	diagnostics.PrintResult(stdout, result)
	return 0
}
