// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// inotifyWatchesPath holds the per-user inotify watch limit on Linux.
const inotifyWatchesPath = "/proc/sys/fs/inotify/max_user_watches"

// WatchLimit returns the per-user inotify watch limit, or 0 when unknown.
// Replaceable in tests.
var WatchLimit = func() int {
	if runtime.GOOS != "linux" {
		return 0
	}
	data, err := os.ReadFile(inotifyWatchesPath)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

// ForWatch returns hints for file watcher setup errors.
// On Linux, suggests raising the inotify limit and shows the current value.
func ForWatch() string {
	var hints []string

	if limit := WatchLimit(); limit > 0 {
		hints = append(hints, "raise fs.inotify.max_user_watches (currently "+strconv.Itoa(limit)+")")
	}
	hints = append(hints, "watch a smaller directory")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2doc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	userDir := filepath.Join(".config", "go-md2doc")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for highlight style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForThemeNotFound returns hints for page theme not found errors.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in: " + strings.Join(available, ", ") + "; custom themes go in <assets-dir>/themes/<name>.css")
}

// ForFormat returns hints for unknown output formats.
func ForFormat(formats []string) string {
	if len(formats) == 0 {
		return ""
	}
	return format("use --format " + strings.Join(formats, "|"))
}

// ForNoInput returns hints when no input path was given.
func ForNoInput() string {
	return format("pass a file or directory, set input.defaultDir in config, or use - for stdin")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
