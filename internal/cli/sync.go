package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/scheduler"
)

// SyncCommand runs the outline sync scheduler in the foreground.
type SyncCommand struct {
	cfg  *config.Config
	Once bool
}

func NewSyncCommand(cfg *config.Config) *SyncCommand {
	return &SyncCommand{cfg: cfg}
}

func (cmd *SyncCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)

	fs.StringVar(&cmd.cfg.Clippings.FilePath, "file", cmd.cfg.Clippings.FilePath, "Path to Kindle 'My Clippings.txt' file")
	fs.StringVar(&cmd.cfg.Outline.OutputDir, "output", cmd.cfg.Outline.OutputDir, "Directory for the generated org file (required)")
	fs.StringVar(&cmd.cfg.Sync.Schedule, "schedule", cmd.cfg.Sync.Schedule, "Cron schedule for periodic sync")
	fs.BoolVar(&cmd.Once, "once", false, "Run a single sync pass and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Periodically re-read the clippings file and rewrite the org outline.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.cfg.Outline.OutputDir == "" {
		return fmt.Errorf("no output directory configured: set OUTLINE_OUTPUT_DIR or pass -output")
	}

	return nil
}

func (cmd *SyncCommand) Run() error {
	s := scheduler.NewOutlineSyncScheduler(cmd.cfg)

	if cmd.Once {
		return s.Sync()
	}

	cmd.cfg.Sync.Enabled = true
	if err := s.Start(context.Background()); err != nil {
		return err
	}

	if next := s.GetNextRunTime(); next != nil {
		fmt.Printf("Next sync at %v. Press Ctrl+C to stop.\n", next)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.Stop()
	return nil
}
