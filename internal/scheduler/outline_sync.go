package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/exporters"
	"github.com/dkarpov/clip2org/internal/outline"
)

// OutlineSyncScheduler periodically re-reads the configured clippings
// file and rewrites the org outline in the output directory.
type OutlineSyncScheduler struct {
	cfg      *config.Config
	exporter exporters.OutlineExporter

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewOutlineSyncScheduler(cfg *config.Config) *OutlineSyncScheduler {
	return &OutlineSyncScheduler{
		cfg:      cfg,
		exporter: exporters.NewOrgExporter(cfg.Outline.OutputDir, cfg.Outline.FileName),
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if sync is enabled.
func (s *OutlineSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Sync.Enabled {
		log.Printf("Outline sync scheduler: disabled")
		return nil
	}

	if s.cfg.Outline.OutputDir == "" {
		log.Printf("Outline sync scheduler: output directory not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.Sync.Schedule, func() {
		if err := s.Sync(); err != nil {
			log.Printf("Outline sync: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Sync.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Outline sync scheduler: started with schedule '%s'", s.cfg.Sync.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sync to
// complete.
func (s *OutlineSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Outline sync scheduler: stopped")
}

// RunNow triggers an immediate sync without waiting for the schedule.
func (s *OutlineSyncScheduler) RunNow() {
	go func() {
		if err := s.Sync(); err != nil {
			log.Printf("Outline sync: %v", err)
		}
	}()
}

// IsRunning returns whether the scheduler is active.
func (s *OutlineSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur.
func (s *OutlineSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// Sync performs one parse -> group -> export pass over the configured
// clippings file.
func (s *OutlineSyncScheduler) Sync() error {
	log.Printf("Outline sync: reading %s", s.cfg.Clippings.FilePath)
	startTime := time.Now()

	file, err := clippings.Open(s.cfg.Clippings.FilePath)
	if err != nil {
		return err
	}
	defer file.Close()

	entries, err := clippings.NewParser().Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}

	collection := outline.Group(entries)
	result, err := s.exporter.Export(collection, outline.Options{
		IncludeDate:     s.cfg.Outline.IncludeDate,
		IncludePDFLinks: s.cfg.Outline.IncludePDFLinks,
		PDFFolder:       s.cfg.Outline.PDFFolder,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	duration := time.Since(startTime)
	log.Printf("Outline sync: exported %d titles (%d entries) to %s in %v",
		result.TitlesProcessed, result.EntriesProcessed, result.OutputPath, duration.Round(time.Millisecond))

	return nil
}
