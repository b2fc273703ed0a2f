package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"ytdlproxy/internal/domain/command"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// output holds what a yt-dlp run wrote.
type output struct {
	stdout []byte
	stderr []byte
}

// run executes yt-dlp with args and waits for it to exit.
//
// If ctx is cancelled or the configured timeout passes, yt-dlp and any helpers it
// started (ffmpeg, aria2c) are killed, and the wait for their output is bounded.
func (y *YTDLP) run(ctx context.Context, args []string) (output, error) {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, y.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = consts.ToolWaitDelay
	killProcessGroup(cmd)

	logging.D(1, "Executing: %s", shellescape.QuoteCommand(append([]string{y.path}, args...)))
	start := time.Now()
	err := cmd.Run()
	logging.D(2, "yt-dlp exited after %s (err: %v)", time.Since(start).Round(time.Millisecond), err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = fmt.Errorf("yt-dlp interrupted: %w", ctxErr)
	}
	return output{stdout: stdout.Bytes(), stderr: stderr.Bytes()}, err
}

// toolUnavailable reports whether err means yt-dlp could not be started at all.
func toolUnavailable(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}

// interrupted reports whether a run was stopped by cancellation or timeout.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// diagnostic returns the most useful text yt-dlp left behind for an operator.
func diagnostic(out output, err error) string {
	msg := strings.TrimSpace(string(out.stderr))
	if msg == "" {
		msg = strings.TrimSpace(string(out.stdout))
	}
	if msg == "" && err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = errconsts.UnknownFailure
	}
	return logging.Truncate(msg, consts.MaxDiagnosticLen)
}

// ToolVersion returns the output of "yt-dlp --version".
func ToolVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.VersionTimeout)
	defer cancel()

	y := NewYTDLP(Options{Path: path})
	out, err := y.run(ctx, []string{command.Version})
	if err != nil {
		if toolUnavailable(err) {
			return "", errors.Join(errconsts.ErrToolUnavailable, err)
		}
		return "", errors.Join(errconsts.ErrToolUnavailable, errors.New(diagnostic(out, err)))
	}
	return strings.TrimSpace(string(out.stdout)), nil
}
