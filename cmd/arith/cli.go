package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/arith"
)

// CLI is the command line of arith.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config kong.ConfigFlag `help:"YAML file with default flag values." placeholder:"FILE"`

	In     string `help:"Input file, or '-' for stdin. Stdin is read by default when no statements are given." short:"i" placeholder:"FILE"`
	Lines  bool   `help:"Treat each input line as a separate statement."                                    short:"n"`
	Output string `help:"Output format."                          default:"text" enum:"text,json,yaml"                short:"o"`
	Echo   bool   `help:"Print each normalized statement before its result."`
	Trace  bool   `help:"Print each operator application."`
	Jobs   int    `help:"Number of statements to evaluate at once."  default:"1"                           short:"j"`
	Strict bool   `help:"Exit with an error if any statement has no result."`

	Statements []string `arg:"" help:"Statements to evaluate." name:"statement" optional:""`
}

// errNoResult is returned in strict mode when a statement has no result.
var errNoResult = errors.New("some statements have no result")

// Run parses args and evaluates the statements they name. exit is called
// for help and usage errors.
func Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate infix arithmetic statements."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.Configuration(loadYAML, defaultConfigPath()),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Jobs < 1 {
		return errors.New("jobs (" + strconv.Itoa(cli.Jobs) + ") must be positive")
	}

	logger := cli.Log.logger(stderr)
	defer cli.Pprof.start(logger)()

	stmts, err := cli.statements(stdin)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "statements loaded",
		slog.Int("count", len(stmts)),
		slog.Int("jobs", cli.Jobs),
	)

	recs, err := cli.evaluate(ctx, logger, stmts)
	if err != nil {
		return err
	}
	if err := write(stdout, cli.Output, cli.Echo, cli.Trace, recs); err != nil {
		return err
	}
	if cli.Strict {
		for _, r := range recs {
			if r.Result == nil {
				return errNoResult
			}
		}
	}
	return nil
}

// defaultConfigPath returns the path of the configuration file loaded when no
// --config is given. The file need not exist.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arith", "config.yaml")
}

// statements collects statements from the input file, if there is one, and
// then from the command line.
func (c *CLI) statements(stdin io.Reader) ([]string, error) {
	f, err := infile(c.In, stdin, len(c.Statements) == 0)
	if err != nil {
		return nil, err
	}
	var stmts []string
	if f != nil {
		if cl, ok := f.(io.Closer); ok && f != stdin {
			defer cl.Close()
		}
		stmts, err = c.read(f)
		if err != nil {
			return nil, err
		}
	}
	return append(stmts, c.Statements...), nil
}

// read reads statements from an input. Without --lines, the entire input is
// one statement. Blank statements are skipped.
func (c *CLI) read(r io.Reader) ([]string, error) {
	if !c.Lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var stmts []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		stmts = append(stmts, scan.Text())
	}
	return stmts, scan.Err()
}

func infile(inname string, stdin io.Reader, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}

// evaluate evaluates statements with up to c.Jobs at once. The records are in
// the same order as the statements.
func (c *CLI) evaluate(ctx context.Context, logger *slog.Logger, stmts []string) ([]record, error) {
	recs := make([]record, len(stmts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Jobs)
	for i, s := range stmts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs[i] = evalOne(ctx, logger, s, c.Trace)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}

// evalOne evaluates a single statement.
func evalOne(ctx context.Context, logger *slog.Logger, stmt string, trace bool) record {
	rec := record{Expr: arith.Normalize(stmt)}
	var opts []arith.EvalOption
	if trace {
		opts = append(opts, arith.WithTrace(func(s arith.Step) {
			rec.Steps = append(rec.Steps, s.String())
		}))
	}
	r, err := arith.Calculate(stmt, opts...)
	if err != nil {
		rec.Error = err.Error()
		attrs := []slog.Attr{
			slog.String("expr", rec.Expr),
			slog.Any("error", err),
		}
		var ie arith.InputError
		if errors.As(err, &ie) {
			attrs = append(attrs, slog.Int("col", ie.Pos()))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "no result", attrs...)
		return rec
	}
	rec.Result = &r
	logger.LogAttrs(ctx, slog.LevelDebug, "evaluated",
		slog.String("expr", rec.Expr),
		slog.String("result", r),
	)
	return rec
}
