// Command boggle runs an interactive Boggle game in the terminal.
//
// Subcommands:
//  1. "play" (default) – shake a board and read clicks from stdin until exit
//  2. "shake" – print one shaken board, optionally as a JSON snapshot
//  3. "configs" – list the dice configurations in the config directory
//  4. "validate" – validate dice configuration files
//  5. "analyze" – print letter statistics for dice configurations
//
// Flags control the config directory, the dice configuration, the word list,
// the random seed and logging. Each flag can also be set from the environment
// or a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/boggle/game/config"
	"github.com/wricardo/boggle/game/engine"
	"github.com/wricardo/boggle/game/geometry"
	"github.com/wricardo/boggle/game/lexicon"
	"github.com/wricardo/boggle/game/service"
	"github.com/wricardo/boggle/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Boggle"
)

// seedMix decorrelates the two PCG state words derived from one seed
const seedMix = 0x9e3779b97f4a7c15

var errInvalidConfigs = errors.New("some configurations have errors")

// dotenvErr holds the result of loading .env. It is reported once logging is configured.
var dotenvErr error = os.ErrNotExist

// main loads .env, wires signals and runs the CLI
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	// Load .env before flags are parsed so it feeds the env sources
	dotenvErr = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("boggle failed")
		os.Exit(1)
	}
}

// newApp builds the command tree. Streams are injected so tests can script a game.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "boggle",
		Usage:     "find words on a shaken board of letter dice",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing dice configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "dice configuration name, or path to a .json file (default: classic)",
				Sources: cli.EnvVars("BOGGLE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Value:   "data/bogwords.txt",
				Usage:   "word list, one word per line",
				Sources: cli.EnvVars("LEXICON_FILE"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed for reproducible boards (default: time based)",
				Sources: cli.EnvVars("BOGGLE_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(stderr, cmd.String("log-level"), cmd.Bool("debug")); err != nil {
				return ctx, err
			}
			reportDotenv(dotenvErr)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPlay(ctx, cmd, stdin, stdout)
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play interactively, reading commands from stdin",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runPlay(ctx, cmd, stdin, stdout)
				},
			},
			{
				Name:  "shake",
				Usage: "print one shaken board",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print the full game snapshot as JSON"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runShake(cmd, stdout)
				},
			},
			{
				Name:  "configs",
				Usage: "list available dice configurations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runConfigs(cmd, stdout)
				},
			},
			{
				Name:      "validate",
				Usage:     "validate dice configuration files",
				ArgsUsage: "[file.json ...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidate(cmd, stdout)
				},
			},
			{
				Name:      "analyze",
				Usage:     "print letter statistics for dice configurations",
				ArgsUsage: "[config ...]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runAnalyze(cmd, stdout)
				},
			},
		},
	}
}

// setupLogging configures the global zerolog logger
func setupLogging(w io.Writer, level string, debug bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	return nil
}

// reportDotenv logs the outcome of loading .env. A missing file is not reported.
func reportDotenv(err error) {
	switch {
	case err == nil:
		log.Debug().Msg("loaded environment variables from .env file")
	case !os.IsNotExist(err):
		log.Warn().Err(err).Msg("error loading .env file")
	}
}

// runPlay wires the engine, the layout and the console frontend and blocks
// until the player exits or stdin closes
func runPlay(ctx context.Context, cmd *cli.Command, stdin io.Reader, stdout io.Writer) error {
	words, err := lexicon.Load(cmd.String("lexicon"))
	if err != nil {
		return err
	}
	log.Info().Int("words", words.Len()).Str("file", cmd.String("lexicon")).Msg("lexicon loaded")

	eng, err := newEngine(cmd, words)
	if err != nil {
		return err
	}

	layout := geometry.NewLayout(eng.Config().Cols, eng.Config().Rows)
	surface := console.NewSurface(stdout, eng.Grid())
	input := console.NewInput(stdin, layout, stdout)
	defer input.Close()

	fmt.Fprintf(stdout, "%s v%s (%s)\n", AppName, Version, eng.Config().Name)
	fmt.Fprintln(stdout, "Commands: <col> <row>, click <x> <y>, reset, up, down, exit")

	svc := service.NewGameService(eng, layout, surface, log.Logger)
	if err := svc.Run(ctx, input); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Found %d words\n", eng.Ledger().Size())
	return nil
}

// runShake prints one board without starting a game
func runShake(cmd *cli.Command, stdout io.Writer) error {
	eng, err := newEngine(cmd, lexicon.New())
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eng.Snapshot())
	}

	surface := console.NewSurface(stdout, eng.Grid())
	return surface.Flush()
}

// runConfigs lists the configurations the manager can load
func runConfigs(cmd *cli.Command, stdout io.Writer) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Fprintf(stdout, "No configurations in %s, the built-in classic dice will be used\n", manager.Dir())
		return nil
	}

	for _, c := range configs {
		fmt.Fprintf(stdout, "%-12s %dx%d  %s\n", c.ConfigID, c.Cols, c.Rows, c.Description)
	}
	return nil
}

// runValidate validates the named files, or every file in the config directory
func runValidate(cmd *cli.Command, stdout io.Writer) error {
	var results []config.ValidationResult
	if cmd.Args().Len() > 0 {
		for _, file := range cmd.Args().Slice() {
			results = append(results, config.ValidateFile(file))
		}
	} else {
		var err error
		results, err = config.ValidateDir(cmd.String("config-dir"))
		if err != nil {
			return err
		}
	}

	allValid := true
	for _, result := range results {
		fmt.Fprintf(stdout, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(stdout, "VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(stdout, "  "+info)
			}
			continue
		}

		allValid = false
		fmt.Fprintln(stdout, "INVALID")
		for _, msg := range result.Errors {
			fmt.Fprintln(stdout, "  - "+msg)
		}
	}

	fmt.Fprintf(stdout, "\n%s\n", strings.Repeat("=", 40))
	if !allValid {
		return errInvalidConfigs
	}
	fmt.Fprintln(stdout, "All configurations are valid!")
	return nil
}

// runAnalyze prints statistics for the named configurations, or all of them
func runAnalyze(cmd *cli.Command, stdout io.Writer) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()
	if len(names) == 0 {
		configs, err := manager.ListConfigs()
		if err != nil {
			return err
		}
		for _, c := range configs {
			names = append(names, c.ConfigID)
		}
	}

	if len(names) == 0 {
		fmt.Fprintln(stdout, "\n=== Analyzing built-in classic dice ===")
		config.WriteReport(stdout, config.Analyze(manager.GetDefault()))
		return nil
	}

	for _, name := range names {
		dice, err := manager.LoadConfig(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\n=== Analyzing %s ===\n", name)
		config.WriteReport(stdout, config.Analyze(dice))
	}
	return nil
}

// newEngine resolves the dice configuration and seed flags into a fresh engine
func newEngine(cmd *cli.Command, words engine.Lexicon) (*engine.GameEngine, error) {
	dice, err := resolveDiceConfig(cmd)
	if err != nil {
		return nil, err
	}

	seed := cmd.Int64("seed")
	if !cmd.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Str("config", dice.Name).Msg("shaking board")

	return engine.NewEngine(dice, words, newRand(seed))
}

// resolveDiceConfig treats --config as a file path when it names an existing
// .json file and as a configuration name otherwise
func resolveDiceConfig(cmd *cli.Command) (*engine.DiceConfig, error) {
	name := cmd.String("config")
	if strings.HasSuffix(name, ".json") {
		if _, err := os.Stat(name); err == nil {
			return engine.LoadDiceConfig(name)
		}
	}

	dir := cmd.String("config-dir")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if name != "" {
			return nil, fmt.Errorf("config directory does not exist: %s", dir)
		}
		log.Debug().Str("dir", dir).Msg("no config directory, using built-in classic dice")
		return engine.DefaultDiceConfig(), nil
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return manager.GetDefault(), nil
	}
	return manager.LoadConfig(name)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^seedMix))
}
