package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dkarpov/clip2org/internal/cli"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// A .env next to the binary feeds viper's env lookup; absence is fine
	_ = godotenv.Load()

	cfg := config.NewConfig()

	// No arguments: convert the configured clippings file
	name := "convert"
	var args []string
	if len(os.Args) > 1 {
		name = os.Args[1]
		args = os.Args[2:]
	}

	switch name {
	case "convert":
		runCommand(cli.NewConvertCommand(cfg), args)

	case "import":
		runCommand(cli.NewImportCommand(cfg), args)

	case "export":
		runCommand(cli.NewExportCommand(cfg), args)

	case "sync":
		runCommand(cli.NewSyncCommand(cfg), args)

	case "serve":
		entrypoint.Run(cfg, Version)

	case "-h", "--help", "help":
		printUsage()

	default:
		if strings.HasPrefix(name, "-") {
			// Bare flags go to the default convert command
			runCommand(cli.NewConvertCommand(cfg), os.Args[1:])
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}
}

func runCommand(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  convert   Convert 'My Clippings.txt' to an org outline (default)\n")
	fmt.Fprintf(os.Stderr, "  import    Import clippings into the local library database\n")
	fmt.Fprintf(os.Stderr, "  export    Render the org outline from the library database\n")
	fmt.Fprintf(os.Stderr, "  sync      Periodically re-convert the clippings file on a schedule\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP conversion server\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
