package main

import (
	"context"
	"time"

	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/file"
	"ytdlproxy/internal/utils/logging"
)

// startSweeper periodically removes downloads orphaned in the temp directory.
//
// Mainly useful after a crash, when a request never reached its own cleanup.
func startSweeper(ctx context.Context, dir string) {
	file.SweepStale(dir, consts.StaleArtifactAge, time.Now())

	ticker := time.NewTicker(consts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			file.SweepStale(dir, consts.StaleArtifactAge, now)
		}
	}
}

// cleanup logs the final state of the program and closes the log file.
func cleanup(startTime time.Time) {
	if r := recover(); r != nil {
		logging.E("Panic occurred: %v", r)
	}
	logging.I("%s exiting after %v", consts.ProgramName, time.Since(startTime).Round(time.Second))
	logging.Close()
}
