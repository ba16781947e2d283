package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "GRID_DEBUG"

var (
	out     io.Writer
	closer  io.Closer
	envOnce sync.Once
	mu      sync.Mutex
)

// Init starts logging to the file at path, replacing any previous target.
func Init(path string) error {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "grid-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out, closer = f, f
	return nil
}

// SetOutput directs log lines to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out, closer = nil, nil
	return err
}

// Enabled reports whether log lines are currently written anywhere.
func Enabled() bool {
	envOnce.Do(initFromEnv)
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	envOnce.Do(initFromEnv)
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

func initFromEnv() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(path); err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", err)
	}
}
