package consts

import "time"

// External tool
const (
	DefaultToolTimeout = 15 * time.Minute
	VersionTimeout     = 10 * time.Second
	ToolWaitDelay      = 3 * time.Second
)

// Server
const (
	ReadHeaderTimeout = 10 * time.Second
	IdleTimeout       = 120 * time.Second
	ShutdownTimeout   = 30 * time.Second
)

// Temp directory sweeping
const (
	SweepInterval    = 30 * time.Minute
	StaleArtifactAge = 6 * time.Hour
)
