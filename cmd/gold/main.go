// Command gold evaluates a Gold source file or inline expression and
// prints the resulting value, the way the host's cmd/barn prints a
// one-off MOO expression evaluation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"gold"
	"gold/gerr"
	"gold/trace"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "run", "eval", "help", "-h", "--help":
			runCLI()
			return
		}
	}
	runFlags()
}

// runFlags is the quick single-binary path (`gold -eval "..."` or
// `gold path/to/file.gold`), grounded on cmd/barn's flag-based
// configuration.
func runFlags() {
	evalExpr := flag.String("eval", "", "Evaluate a Gold expression directly")
	traceEnabled := flag.Bool("trace", false, "Enable evaluator step tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob over AST node kind)")
	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = []string{*traceFilter}
		}
		trace.Init(true, filters, os.Stderr)
	}

	if *evalExpr != "" {
		printResult(gold.EvalRaw(*evalExpr))
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		log.Fatalf("usage: gold [-eval EXPR | -trace] FILE")
	}
	printResult(gold.EvalFile(args[0]))
}

func printResult(v interface{ ToString() string }, err *gerr.Error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "(%s) %s: %s\n", err.Span, err.Kind, err.Message)
		os.Exit(1)
	}
	fmt.Println(v.ToString())
}

// runCLI is the structured subcommand surface (`gold run FILE`,
// `gold eval EXPR`), layered on github.com/urfave/cli/v2.
func runCLI() {
	app := &cli.App{
		Name:  "gold",
		Usage: "evaluate Gold configuration expressions",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "evaluate a Gold source file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("run requires exactly one file argument", 1)
					}
					v, err := gold.EvalFile(c.Args().First())
					return emit(v, err)
				},
			},
			{
				Name:      "eval",
				Usage:     "evaluate an inline Gold expression",
				ArgsUsage: "EXPR",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("eval requires exactly one expression argument", 1)
					}
					v, err := gold.EvalRaw(c.Args().First())
					return emit(v, err)
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func emit(v interface{ ToString() string }, err *gerr.Error) error {
	if err != nil {
		return cli.Exit(fmt.Sprintf("(%s) %s: %s", err.Span, err.Kind, err.Message), 1)
	}
	fmt.Println(v.ToString())
	return nil
}
