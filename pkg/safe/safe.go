package safe

import (
	"log/slog"
	"runtime/debug"
	"strings"
)

// Run executes fn and logs any panic with a trimmed stack trace instead of
// crashing the process. Every background goroutine goes through here.
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", "safe.Run"),
				slog.String("stack", stackTrace(3)),
			)
		}
	}()

	fn()
}

// RunWithComponent is Run with an explicit component tag for the log entry.
func RunWithComponent(fn func(), component string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", component),
				slog.String("stack", stackTrace(3)),
			)
		}
	}()

	fn()
}

// stackTrace formats the current stack, skipping the recovery frames and
// keeping at most 20 frames.
func stackTrace(skipFrames int) string {
	lines := strings.Split(string(debug.Stack()), "\n")

	formatted := []string{"Stack trace:"}
	start := skipFrames
	if start < len(lines) {
		for i := start; i < len(lines) && i < start+20; i++ {
			line := strings.TrimSpace(lines[i])
			if line != "" {
				formatted = append(formatted, "  "+line)
			}
		}
		if len(lines) > start+20 {
			formatted = append(formatted, "  ... (truncated)")
		}
	}

	return strings.Join(formatted, "\n")
}

// GetStack returns the raw stack trace of the calling goroutine.
func GetStack() string {
	return string(debug.Stack())
}
