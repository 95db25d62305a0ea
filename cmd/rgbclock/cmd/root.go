// Package cmd implements the rgbclock CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, watch, serve).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/rgbclock/cmd/rgbclock/internal/config"
	"github.com/go-drift/rgbclock/pkg/errors"
	"github.com/go-drift/rgbclock/pkg/logger"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "rgbclock",
	Short: "rgbclock - an analog clock drawn as colored rings",
	Long: `rgbclock draws an analog clock whose hours, minutes and seconds are
concentric rings of colored pie slices.

Use "rgbclock <command> --help" for more information about a command.`,
	Usage: "rgbclock <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// configPath is set by the global --config flag.
var configPath string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	configPath = ""

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("rgbclock version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a file path")
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig reads --config if given, otherwise rgbclock.yaml from the
// working directory when present.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, errors.New("config", errors.KindConfig, err)
	}
	return cfg, nil
}

// setupLogging builds the process logger and routes reported errors to it.
func setupLogging(cfg *config.Config) *logger.Logger {
	log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	errors.SetHandler(errors.NewLogHandler(log))
	return log
}

// takeValue returns the value of flag name at args[i], accepting both
// "--name value" and "--name=value". ok is false when args[i] is not name.
func takeValue(args []string, i int, name string) (value string, next int, ok bool, err error) {
	arg := args[i]
	if strings.HasPrefix(arg, name+"=") {
		return strings.TrimPrefix(arg, name+"="), i, true, nil
	}
	if arg != name {
		return "", i, false, nil
	}
	if i+1 >= len(args) {
		return "", i, true, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], i + 1, true, nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config FILE        Configuration file (default: ./rgbclock.yaml if present)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  RGBCLOCK_LOG_LEVEL   Log level override (debug, info, warn, error)")
	fmt.Println("  RGBCLOCK_ADDR        Preview server listen address override")
	fmt.Println("  RGBCLOCK_FPS         Preview stream frame rate override")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  rgbclock render --at 10:08:30 --out face.png   Render one frame")
	fmt.Println("  rgbclock watch --format svg --fps 1            Keep clock.svg current")
	fmt.Println("  rgbclock serve                                 Live preview on :8080")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
