package daemon

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/okranz/makoed/internal/logging"
)

// Reload asks the running mako instance to re-read its configuration by
// invoking `makoctl reload`. It returns makoctl's trimmed stdout on
// success; on failure the error carries the trimmed stderr (or the exec
// error when makoctl could not be started at all).
func Reload() (string, error) {
	out, err := exec.Command("makoctl", "reload").Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				logging.Warn("makoctl reload failed", zap.String("stderr", stderr))
				return "", fmt.Errorf("makoctl reload: %s", stderr)
			}
		}
		logging.Warn("makoctl reload failed", zap.Error(err))
		return "", fmt.Errorf("failed to execute makoctl: %w", err)
	}
	msg := strings.TrimSpace(string(out))
	logging.Info("makoctl reload succeeded", zap.String("output", msg))
	return msg, nil
}

// Notify sends a desktop notification announcing a configuration change.
// Besides confirming the save, the notification itself previews the new
// style. Failures are ignored; notify-send is best effort.
func Notify(key, value string) {
	err := exec.Command("notify-send", "Mako Config Updated",
		fmt.Sprintf("%s = %s", key, value)).Start()
	if err != nil {
		logging.Debug("notify-send unavailable", zap.Error(err))
	}
}
