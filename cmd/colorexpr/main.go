package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/funvibe/colorexpr/internal/config"
	"github.com/funvibe/colorexpr/pkg/colorexpr"
)

const usage = `Usage: colorexpr [flags] [expression...]

Without an expression, lines are read from stdin. In the REPL, a line
starting with "less " is transpiled, one starting with "ast " also
prints the syntax tree and one starting with "fmt " is only formatted.

Flags:
  -less          transpile to LESS
  -ast           print the syntax tree
  -locs          keep source locations in the tree
  -names         append CSS names to colors
  -fmt           print the expression in canonical form instead of evaluating
  -color MODE    auto, always or never
  -seed N        make rand reproducible
  -config FILE   read settings from FILE instead of .colorexpr.yaml
  -help          show this message

REPL commands: :vars, :unset NAME, :quit
`

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	tty    bool
	env    func(string) (string, bool)
}

func main() {
	c := &cli{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    isTerminal(os.Stdout),
		env:    os.LookupEnv,
	}
	os.Exit(c.run(os.Args[1:]))
}

type flags struct {
	less, ast, locs, names bool
	fmt                    bool
	color, configPath      string
	seed                   *uint64
	exprs                  []string
}

func parseArgs(args []string) (*flags, error) {
	f := &flags{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || isNegativeNumber(arg) {
			f.exprs = append(f.exprs, args[i:]...)
			break
		}
		name := strings.TrimLeft(arg, "-")
		needValue := func() (string, error) {
			if i+1 >= len(args) {
				return "", errors.Newf("flag %s needs a value", arg)
			}
			i++
			return args[i], nil
		}
		switch name {
		case "less":
			f.less = true
		case "ast":
			f.ast = true
		case "locs":
			f.locs = true
		case "names":
			f.names = true
		case "fmt":
			f.fmt = true
		case "color":
			v, err := needValue()
			if err != nil {
				return nil, err
			}
			f.color = v
		case "seed":
			v, err := needValue()
			if err != nil {
				return nil, err
			}
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return nil, errors.Newf("invalid seed %q", v)
			}
			f.seed = &n
		case "config":
			v, err := needValue()
			if err != nil {
				return nil, err
			}
			f.configPath = v
		case "h", "help":
			return nil, errHelp
		case "":
			f.exprs = append(f.exprs, args[i+1:]...)
			return f, nil
		default:
			return nil, errors.Newf("unknown flag %s", arg)
		}
	}
	return f, nil
}

var errHelp = errors.New("help requested")

// isNegativeNumber lets "-5 * 2" through as an expression.
func isNegativeNumber(s string) bool {
	return len(s) > 1 && (s[1] == '.' || (s[1] >= '0' && s[1] <= '9'))
}

func (c *cli) loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil || found == "" {
			return config.Default(), err
		}
		path = found
	}
	return config.LoadConfig(path)
}

func (c *cli) run(args []string) int {
	f, err := parseArgs(args)
	if errors.Is(err, errHelp) {
		fmt.Fprint(c.stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %s\n\n%s", err, usage)
		return 2
	}

	cfg, err := c.loadConfig(f.configPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %s\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	engineOpts := []colorexpr.EngineOption{colorexpr.WithLogger(logger), colorexpr.WithConfig(cfg)}
	if f.seed != nil {
		engineOpts = append(engineOpts, colorexpr.WithSeed(*f.seed))
	}
	engine, err := colorexpr.New(engineOpts...)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %s\n", err)
		return 1
	}

	opts := colorexpr.OptionsFromConfig(cfg)
	if f.less {
		opts.Evaluator = colorexpr.EvaluatorLess
	}
	opts.WithAst = opts.WithAst || f.ast
	opts.AstWithLocs = opts.AstWithLocs || f.locs
	opts.AppendNames = opts.AppendNames || f.names

	mode := cfg.Color
	if f.color != "" {
		mode = f.color
	}
	level := detectColorLevel(mode, c.tty, c.env)
	logger.Debug("starting", slog.String("session", engine.Session().String()), slog.Int("color_level", level))

	if len(f.exprs) > 0 {
		src := strings.Join(f.exprs, " ")
		if f.fmt {
			if !c.format(engine, src) {
				return 1
			}
			return 0
		}
		if !c.print(engine.Evaluate(src, opts), level) {
			return 1
		}
		return 0
	}
	return c.repl(engine, opts, level)
}

func (c *cli) format(engine *colorexpr.Engine, src string) bool {
	out, err := engine.Format(src)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return false
	}
	fmt.Fprintln(c.stdout, out)
	return true
}

// print writes the result and reports whether it succeeded.
func (c *cli) print(r colorexpr.Result, level int) bool {
	if r.Failed() {
		fmt.Fprintln(c.stderr, r.Error)
		return false
	}
	if r.AstStr != "" {
		fmt.Fprintln(c.stdout, r.AstStr)
	}
	fmt.Fprintln(c.stdout, decorate(r.Result, r.ResultStr, level))
	return true
}

func (c *cli) repl(engine *colorexpr.Engine, opts colorexpr.Options, level int) int {
	scanner := bufio.NewScanner(c.stdin)
	failed := false
	prompt := func() {
		if c.tty {
			fmt.Fprint(c.stdout, "> ")
		}
	}

	for prompt(); scanner.Scan(); prompt() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == ":quit" || line == ":q":
			return exitCode(failed)
		case line == ":vars":
			for _, name := range engine.Variables() {
				v, _ := engine.Inspect(name, opts.AppendNames)
				fmt.Fprintf(c.stdout, "%s = %s\n", name, v)
			}
			continue
		case strings.HasPrefix(line, ":unset "):
			name := strings.TrimSpace(strings.TrimPrefix(line, ":unset "))
			if !engine.Unset(name) {
				fmt.Fprintf(c.stderr, "Error: variable %s is not defined.\n", name)
			}
			continue
		}

		if rest, ok := strings.CutPrefix(line, config.FmtLinePrefix); ok {
			if !c.format(engine, strings.TrimSpace(rest)) {
				failed = true
			}
			continue
		}

		lineOpts := opts
		for {
			if rest, ok := strings.CutPrefix(line, config.LessLinePrefix); ok {
				lineOpts.Evaluator = colorexpr.EvaluatorLess
				line = strings.TrimSpace(rest)
				continue
			}
			if rest, ok := strings.CutPrefix(line, config.AstLinePrefix); ok {
				lineOpts.WithAst = true
				line = strings.TrimSpace(rest)
				continue
			}
			break
		}

		if !c.print(engine.Evaluate(line, lineOpts), level) {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %s\n", err)
		return 1
	}
	return exitCode(failed)
}

func exitCode(failed bool) int {
	if failed {
		return 1
	}
	return 0
}
