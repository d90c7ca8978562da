// Package cli implements the stripscheduler command-line interface.
//
// Every mode of the tool is a subcommand:
//   - nfdh, ffdh: pack a task file onto a strip and write the schedule file
//   - compare: pack the same task file with both algorithms and print both results
//   - generate: write a random task file
//
// Mode names match case-insensitively. An unknown mode does nothing and exits cleanly,
// unless a config file names an algorithm: then the first argument is taken as the
// task file and packed with that algorithm.
//
// The logger is attached to the command context before any command runs and is
// read back with loggerFromContext.
package cli

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/TudorHulban/stripscheduler"
)

const appName = "stripscheduler"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath   string
	scheduleFile string
	outputDir    string

	seed uint64
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all modes registered.
func (c *CLI) RootCommand() *cobra.Command {
	cobra.EnableCaseInsensitive = true

	root := &cobra.Command{
		Use:   appName,
		Short: "Schedules parallel tasks on a fixed number of units with NFDH and FFDH strip packing",
		Long: `stripscheduler treats every task as a rectangle (units x duration) and packs the
tasks level by level onto a strip as wide as the number of available units,
reporting the schedule length, its lower bound and the wasted capacity.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
		RunE: c.runRoot,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML config file")
	flags.StringVarP(&c.scheduleFile, "out", "o", "", "schedule file name (default "+stripscheduler.DefaultScheduleFile+")")
	flags.StringVar(&c.outputDir, "dir", "", "directory for written files (default current directory)")
	flags.Uint64Var(&c.seed, "seed", 0, "random seed for generate, 0 picks one")

	root.AddCommand(c.packCommand(stripscheduler.ModeNFDH))
	root.AddCommand(c.packCommand(stripscheduler.ModeFFDH))
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// runRoot handles arguments no mode command claimed. With a config algorithm
// the first argument is the task file, otherwise there is nothing to do.
func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	logger := loggerFromContext(cmd.Context())

	if len(c.configPath) == 0 {
		logger.Debug("unrecognized mode, nothing to do", "mode", args[0])

		return nil
	}

	cfg, errSettings := c.settings(cmd)
	if errSettings != nil {
		return errSettings
	}

	mode := stripscheduler.ParseMode(cfg.Algorithm)

	switch mode {
	case stripscheduler.ModeNFDH, stripscheduler.ModeFFDH, stripscheduler.ModeCompare:
		n, errWidth := stripWidth(args, 1, cfg)
		if errWidth != nil {
			return errWidth
		}

		logger.Debug("mode taken from config", "algorithm", mode, "task_file", args[0])

		if mode == stripscheduler.ModeCompare {
			return c.runCompare(cmd, args[0], n)
		}

		return c.runPack(cmd, mode, args[0], n, cfg)

	default:
		logger.Debug("unrecognized mode, nothing to do", "mode", args[0])

		return nil
	}
}

// settings merges the config file, if any, with the flags set on cmd.
func (c *CLI) settings(cmd *cobra.Command) (*stripscheduler.Config, error) {
	result := stripscheduler.DefaultConfig()

	if len(c.configPath) > 0 {
		loaded, errLoad := stripscheduler.LoadConfig(c.configPath)
		if errLoad != nil {
			return nil,
				errLoad
		}

		result = loaded

		loggerFromContext(cmd.Context()).Debug("config loaded", "path", c.configPath)
	}

	flags := cmd.Flags()

	if flags.Changed("out") {
		result.ScheduleFile = c.scheduleFile
	}

	if flags.Changed("dir") {
		result.OutputDir = c.outputDir
	}

	if flags.Changed("seed") {
		result.Seed = c.seed
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return result,
		nil
}

// stripWidth takes N from args[position] when given, else from the config.
func stripWidth(args []string, position int, cfg *stripscheduler.Config) (int, error) {
	if len(args) > position {
		value, errConv := strconv.Atoi(args[position])
		if errConv != nil {
			return 0,
				&stripscheduler.ErrMalformedInput{
					Content: args[position],
					Issue:   errConv,
				}
		}

		return value,
			nil
	}

	if cfg.StripWidth > 0 {
		return cfg.StripWidth,
			nil
	}

	return 0,
		errors.New("strip width is required, pass it as an argument or set strip_width in the config")
}

func schedulePath(cfg *stripscheduler.Config) string {
	if filepath.IsAbs(cfg.ScheduleFile) {
		return cfg.ScheduleFile
	}

	return filepath.Join(cfg.OutputDir, cfg.ScheduleFile)
}
