// Package main is the entrypoint of ytdlproxy.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ytdlproxy/internal/cfg"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/server"
	"ytdlproxy/internal/utils/logging"
)

// main is the main entrypoint of the program.
func main() {
	startTime := time.Now()

	// create cancellable context for shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	err := cfg.Execute(ctx, func(ctx context.Context, c *cfg.Config) error {
		return run(ctx, c, startTime)
	})
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s exiting with error: %v\n", consts.ProgramName, err)
		os.Exit(1)
	}
}

// run serves requests until ctx is cancelled.
func run(ctx context.Context, c *cfg.Config, startTime time.Time) error {
	// Setup logging
	if err := logging.SetupLogging(logging.Config{
		LogFilePath: c.LogFile,
		Level:       c.DebugLevel,
		Console:     os.Stdout,
	}); err != nil {
		return err
	}
	defer cleanup(startTime)

	extractor, policy, err := initializeApplication(ctx, c)
	if err != nil {
		return err
	}

	logging.I("%s %s (PID: %d) started at: %v",
		consts.ProgramName, consts.Version, os.Getpid(), startTime.Format("2006-01-02 15:04:05.00 MST"))

	ctx, cancel := context.WithCancel(ctx)
	sweepDone := make(chan struct{})
	go func() {
		startSweeper(ctx, c.TempDir)
		close(sweepDone)
	}()

	// ---- RUN PROGRAM ----
	runErr := server.StartServer(ctx, c, extractor, policy)

	// ---- SHUTDOWN ----
	cancel()
	<-sweepDone
	return runErr
}
