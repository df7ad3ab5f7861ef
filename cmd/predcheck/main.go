// Command predcheck evaluates a predicate expression against a stream of
// YAML or JSON documents read from stdin.
//
//	echo '"#ff00aa"' | predcheck -e 'every: [isString, isColor]'
//
// Each document produces a line "<index>\t<true|false>". The exit status is
// 0 when every document matches, 1 when at least one does not and 2 on
// usage or input errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/predicate/pkg/config"
	"github.com/dmitrymomot/predicate/pkg/environment"
	"github.com/dmitrymomot/predicate/pkg/logger"
	"github.com/dmitrymomot/predicate/pkg/predicate"
	"github.com/dmitrymomot/predicate/pkg/predicate/expr"
)

const (
	exitMatch    = 0
	exitMismatch = 1
	exitError    = 2
)

// Config holds defaults read from PREDCHECK_* environment variables.
// Command line flags take precedence.
type Config struct {
	Expr      string `env:"EXPR"`
	ExprFile  string `env:"EXPR_FILE"`
	Env       string `env:"ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

type documentKey struct{}

var errNoExpression = errors.New("no expression given: use --expr or --expr-file")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("PREDCHECK_")); err != nil {
		fmt.Fprintf(stderr, "predcheck: %v\n", err)
		return exitError
	}

	flags := pflag.NewFlagSet("predcheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	exprSrc := flags.StringP("expr", "e", cfg.Expr, "predicate expression (YAML or JSON)")
	exprFile := flags.StringP("expr-file", "f", cfg.ExprFile, "file containing the predicate expression")
	quiet := flags.BoolP("quiet", "q", false, "print nothing, report through the exit status only")
	logLevel := flags.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	listNames := flags.Bool("list", false, "list the available predicate names and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: predcheck [flags] < documents")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}

	if *listNames {
		fmt.Fprintln(stdout, strings.Join(predicate.Names(), "\n"))
		return exitMatch
	}

	src, source, err := readExpression(*exprSrc, *exprFile)
	if err != nil {
		fmt.Fprintf(stderr, "predcheck: %v\n", err)
		return exitError
	}

	log, err := newLogger(cfg, *logLevel, source, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "predcheck: %v\n", err)
		return exitError
	}
	logger.SetAsDefault(log)

	check, err := expr.Parse(src)
	if err != nil {
		log.Error("failed to load expression", logger.Error(err))
		return exitError
	}
	tracing := log.Enabled(context.Background(), slog.LevelDebug)

	status := exitMatch
	dec := yaml.NewDecoder(stdin)
	for i := 0; ; i++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Error("failed to decode document", logger.Document(i), logger.Error(err))
			return exitError
		}

		eval := check
		if tracing {
			// Trace records are logged without a context; bind the index here.
			eval = expr.MustParse(string(src), expr.WithLogger(
				log.With(logger.Component("expr"), logger.Document(i)),
			))
		}

		ctx := context.WithValue(context.Background(), documentKey{}, i)
		ok := eval(doc)
		log.DebugContext(ctx, "document evaluated", logger.Result(ok))
		if !ok {
			status = exitMismatch
		}
		if !*quiet {
			fmt.Fprintf(stdout, "%d\t%t\n", i, ok)
		}
	}
	return status
}

func newLogger(cfg Config, level, source string, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), "predcheck"),
		logger.WithOutput(w),
		logger.WithAttr(logger.Source(source)),
		logger.WithContextValue("document", documentKey{}),
	}
	if level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

// readExpression returns the expression source and a label naming where it
// came from.
func readExpression(src, file string) ([]byte, string, error) {
	switch {
	case src != "" && file != "":
		return nil, "", errors.New("--expr and --expr-file are mutually exclusive")
	case src != "":
		return []byte(src), "flag", nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, "", errors.Join(expr.ErrReadExpression, err)
		}
		return data, file, nil
	default:
		return nil, "", errNoExpression
	}
}
