package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/groupsum/internal/adapters/fs"
	"github.com/bft-labs/groupsum/internal/adapters/output"
	"github.com/bft-labs/groupsum/internal/app"
	"github.com/bft-labs/groupsum/internal/cliconfig"
	"github.com/bft-labs/groupsum/internal/ports"
	"github.com/bft-labs/groupsum/pkg/groupsum"
	"github.com/bft-labs/groupsum/pkg/log"
)

//go:embed example.txt
var examplePayload []byte

const longHelp = `
Sum blank-line separated groups of integers and rank the totals.

Prints two lines:
  part1=<largest group sum>
  part2=<sum of the top-k group sums, k=3 by default>

Input is read from the file given as argument or --input, or from stdin
when neither is set (or the path is "-"). Configuration is layered:
flags override GROUPSUM_* environment variables, which override the
config file ($HOME/.groupsum/config.toml).
`

var exampleUsage = strings.TrimSpace(`
  groupsum input.txt
  groupsum --top 5 --format json < input.txt
  groupsum --watch --debounce 250ms input.txt
  groupsum --example
`)

// errConflictingInput is returned when an input is given more than one way.
var errConflictingInput = errors.New("input given both as argument and --input")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath    string
		useExample bool
	)

	base := cliconfig.Logger(stderr)

	root := &cobra.Command{
		Use:           "groupsum [input]",
		Short:         "Sum blank-line separated groups of integers and rank the totals",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// A positional input counts as the --input flag.
			if len(args) == 1 {
				if changed["input"] {
					return errConflictingInput
				}
				cfg.Input = args[0]
				changed["input"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			} else if !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("config file %s not found", cfgFile)
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Environment overrides the file, flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if useExample && (cfg.Input != "" || cfg.Watch) {
				return fmt.Errorf("--example cannot be combined with an input or --watch")
			}

			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			logger := log.NewZerologAdapterWithLogger(base.Level(lvl))
			logger.Debug("configuration", log.Any("config", cfg))

			var source ports.PayloadSource
			if useExample {
				source = fs.NewBytesSource("example", examplePayload)
			} else {
				source = fs.NewSource(cfg.Input, stdin)
			}

			writer, err := output.NewWriter(cfg.Format, stdout)
			if err != nil {
				return err
			}

			solver := groupsum.New(
				groupsum.WithTopK(cfg.TopK),
				groupsum.WithStrict(cfg.Strict),
				groupsum.WithLogger(logger),
			)
			runner := app.NewRunner(source, solver, writer, logger)

			if !cfg.Watch {
				_, err := runner.RunOnce(cmd.Context())
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			err = runner.Watch(ctx, cfg.Debounce)
			logger.Info("stopped watching")
			return err
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.groupsum/config.toml)")
	root.Flags().StringVarP(&cfg.Input, "input", "i", cfg.Input, `payload file ("-" or empty for stdin)`)
	root.Flags().IntVarP(&cfg.TopK, "top", "k", cfg.TopK, "number of largest groups totalled for part2")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail when there are fewer groups than --top instead of totalling all groups")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: "+strings.Join(output.Formats, ", "))
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "re-run whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after a change before re-running (watch mode)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&useExample, "example", false, "solve the bundled example payload")

	return root
}

func main() {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger := cliconfig.Logger(os.Stderr).Level(zerolog.ErrorLevel)
		logger.Error().Err(err).Msg("groupsum")
		os.Exit(1)
	}
}
