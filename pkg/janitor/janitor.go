// Package janitor removes stale audio files left behind when a send
// failed between synthesis and cleanup, or when the process died mid
// request.
package janitor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// prefix of temp files the pipeline creates in the audio directory
const audioFilePrefix = "fraza-"

// Janitor periodically sweeps the audio directory
type Janitor struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time // replaceable for tests
}

// New creates a janitor for dir. Files older than maxAge are removed every
// interval.
func New(dir string, interval, maxAge time.Duration) *Janitor {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	if maxAge == 0 {
		maxAge = time.Hour
	}
	return &Janitor{dir: dir, maxAge: maxAge, interval: interval, now: time.Now}
}

// Run sweeps on a ticker until the context is canceled. An initial sweep
// runs right away to pick up leftovers from a previous run.
func (j *Janitor) Run(ctx context.Context) error {
	lgr.Printf("[INFO] janitor started for %s, interval %v, max age %v", j.dir, j.interval, j.maxAge)

	j.Sweep()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] janitor stopped")
			return nil
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep removes expired audio files once and returns the number removed
func (j *Janitor) Sweep() int {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		lgr.Printf("[WARN] janitor can't read %s: %v", j.dir, err)
		return 0
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), audioFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // removed under our feet
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			lgr.Printf("[WARN] janitor can't remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		lgr.Printf("[INFO] janitor removed %d stale audio files", removed)
	}
	return removed
}
