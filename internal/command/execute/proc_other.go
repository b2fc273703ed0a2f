//go:build !unix

package execute

import "os/exec"

// killProcessGroup is a no-op; cancellation kills only the yt-dlp process and
// WaitDelay bounds the wait on any children.
func killProcessGroup(_ *exec.Cmd) {}
