// Command physl is a thin compile-and-run driver for a single PhySL source
// expression: read -> compile -> evaluate -> print, in the shape of funxy's
// pkg/cli/entry.go (lex/parse replaced here by the small reader in
// reader.go, since the concrete surface parser is out of spec.md's scope).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/phylanx-go/phylanx/internal/compiler"
	phyconfig "github.com/phylanx-go/phylanx/internal/config"
	"github.com/phylanx-go/phylanx/internal/env"
	"github.com/phylanx-go/phylanx/internal/pattern"
	"github.com/phylanx-go/phylanx/internal/primitives"
	"github.com/phylanx-go/phylanx/pkg/locality"
	"github.com/phylanx-go/phylanx/pkg/plugin"
)

func main() {
	os.Exit(Run())
}

// Run parses os.Args, compiles and evaluates the requested source, and
// returns the process exit code. Split out from main so it is trivially
// testable without actually exiting the test binary.
func Run() int {
	expr, path, ok := parseArgs(os.Args[1:])
	if !ok {
		return 1
	}
	if expr == "" && path == "" {
		fmt.Fprintln(os.Stderr, "usage: physl [-e expression] <file.physl>")
		return 1
	}

	source := expr
	configDir := "."
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			printErr(err)
			return 1
		}
		source = string(data)
		configDir = filepath.Dir(path)
	}

	result, err := evalSource(source, configDir)
	if err != nil {
		printErr(err)
		return 1
	}

	fmt.Println(result)
	return 0
}

// parseArgs does its own small hand-rolled scan over os.Args rather than
// reaching for the flag package, matching funxy's pkg/cli/entry.go texture:
// "-e EXPR" selects inline-expression mode, otherwise the first non-flag
// argument is the source file path.
func parseArgs(args []string) (expr, path string, ok bool) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e", "--eval":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-e requires an expression argument")
				return "", "", false
			}
			expr = args[i+1]
			i++
		case "-v", "-version", "--version":
			fmt.Println("physl (phylanx-go)")
			return "", "", false
		default:
			if path == "" {
				path = args[i]
			}
		}
	}
	return expr, path, true
}

func printErr(err error) {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if useColor {
		fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %s\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
}

func buildRegistry(configDir string) (*pattern.Registry, *phyconfig.Config, error) {
	reg := pattern.NewRegistry()

	cfg := phyconfig.Default()
	if found, err := phyconfig.Find(configDir); err == nil && found != "" {
		loaded, err := phyconfig.Load(found)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	primitives.RegisterWithOptions(reg, primitives.Options{
		WorkerPoolSize:           cfg.WorkerPoolSize,
		DirectExecutionThreshold: cfg.DirectExecutionThreshold,
	})
	if len(cfg.Plugins) > 0 {
		if err := plugin.ApplyNamed(reg, cfg.Plugins); err != nil {
			return nil, nil, err
		}
	}
	return reg, cfg, nil
}

func evalSource(source, configDir string) (string, error) {
	reg, cfg, err := buildRegistry(configDir)
	if err != nil {
		return "", err
	}

	expr, err := readProgram(source)
	if err != nil {
		return "", err
	}

	gen := locality.NewGenerator(locality.New())
	c := compiler.New("physl", reg, gen.Next())
	e := env.New(nil)

	node, err := c.Compile(e, expr)
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	if cfg.RecursionGuard > 0 {
		ctx = env.WithRecursionGuard(ctx, cfg.RecursionGuard)
	}

	result, err := node.Eval(ctx, nil)
	if err != nil {
		return "", err
	}
	return formatValue(result), nil
}
