package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/infix"
)

type options struct {
	inname, verb string
	echo         bool
	implicit     bool
	nocolor      bool
	verbose      bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "infix [flags] [expression...]",
		Short: "Evaluate infix arithmetic expressions",
		Long: `Infix evaluates arithmetic expressions with + - * / ^ and parentheses.

Each argument is evaluated as one expression. With no arguments, expressions
are read one per line from the input until EOF. Errors are printed and do not
stop evaluation of later expressions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.inname, "in", "", "input file (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", "%g", "result formatting string")
	f.BoolVar(&o.echo, "echo", false, "print the postfix form of each expression")
	f.BoolVar(&o.implicit, "implicit-mul", false, `treat e.g. "2(3+4)" as multiplication`)
	f.BoolVar(&o.nocolor, "no-color", false, "disable colored output")
	f.BoolVar(&o.verbose, "verbose", false, "log evaluation details to stderr")
	return cmd
}

// repl evaluates expressions and prints their results.
type repl struct {
	out  io.Writer
	log  *slog.Logger
	opts []infix.Option
	verb string
	echo bool
	bad  *color.Color
}

func run(cmd *cobra.Command, o *options, args []string) error {
	out := cmd.OutOrStdout()
	lvl := slog.LevelWarn
	if o.verbose {
		lvl = slog.LevelDebug
	}
	r := repl{
		out:  out,
		log:  slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})),
		verb: o.verb + "\n",
		echo: o.echo,
		bad:  color.New(color.FgRed),
	}
	if o.implicit {
		r.opts = append(r.opts, infix.ImplicitMultiplication())
	}
	if o.nocolor || !isTerminal(out) {
		r.bad.DisableColor()
	}

	for _, arg := range args {
		r.eval(arg)
	}
	in, closer, err := infile(o.inname, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}
	if closer != nil {
		defer closer.Close()
	}
	prompt := isTerminal(in)
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scan.Scan() {
			break
		}
		r.eval(strings.TrimRight(scan.Text(), "\r"))
	}
	if prompt {
		fmt.Fprintln(out)
	}
	if err := scan.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}

// eval evaluates one expression and prints its result or error.
func (r *repl) eval(expr string) {
	if r.echo && expr != "" {
		if p, err := infix.Compile(expr, r.opts...); err == nil && len(p) > 0 {
			fmt.Fprintf(r.out, "%v : ", p)
		}
	}
	v, err := infix.Evaluate(expr, r.opts...)
	if err != nil {
		var e *infix.Error
		if errors.As(err, &e) {
			r.log.Debug("evaluation failed", "expr", expr, "kind", e.Kind, "col", e.Pos(), "token", e.Token)
		}
		r.bad.Fprintln(r.out, err)
		return
	}
	// Empty lines evaluate to NaN. Nothing to show.
	if expr == "" {
		return
	}
	r.log.Debug("evaluated", "expr", expr, "result", v)
	fmt.Fprintf(r.out, r.verb, v)
}

func infile(inname string, std bool, stdin io.Reader) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening input")
		}
		return f, f, nil
	case inname == "-", std:
		return stdin, nil, nil
	}
	return nil, nil, nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
