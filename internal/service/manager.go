// Package service supervises the external litellm proxy process: spawn,
// PID/log-file bookkeeping, graceful shutdown, and status reporting.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mmdsnb/freerouter/pkg/schema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	startupTimeout = 30 * time.Second
	// readyMarker is the line litellm (uvicorn) prints once it is serving.
	readyMarker = "Uvicorn running on"
)

type Manager struct {
	log        *zap.Logger
	configPath string
}

func NewManager(configPath string, log *zap.Logger) *Manager {
	return &Manager{log: log, configPath: configPath}
}

func (m *Manager) dir() string {
	return filepath.Dir(m.configPath)
}

func (m *Manager) PIDFile() string {
	return filepath.Join(m.dir(), "freerouter.pid")
}

func (m *Manager) LogFile() string {
	return filepath.Join(m.dir(), "freerouter.log")
}

func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Addr returns the host/port the proxy binds, from LITELLM_HOST and
// LITELLM_PORT with litellm's own defaults.
func (m *Manager) Addr() (host, port string) {
	host = os.Getenv("LITELLM_HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port = os.Getenv("LITELLM_PORT")
	if port == "" {
		port = "4000"
	}
	return host, port
}

// URL returns a dialable base URL for the running proxy.
func (m *Manager) URL() string {
	host, port := m.Addr()
	if host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}

// ReadPID parses the PID file.
func (m *Manager) ReadPID() (int, error) {
	data, err := os.ReadFile(m.PIDFile())
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("malformed pid file: %w", err)
	}
	return pid, nil
}

func processAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// IsRunning reports whether the proxy tracked by the PID file is alive.
func (m *Manager) IsRunning() bool {
	pid, err := m.ReadPID()
	if err != nil {
		return false
	}
	return processAlive(pid)
}

// Start spawns litellm detached, writes the PID file, and waits for the
// ready marker in the log. A stale PID file from a dead process is
// cleaned up; a live one aborts the start.
func (m *Manager) Start(ctx context.Context) error {
	if pid, err := m.ReadPID(); err == nil {
		if processAlive(pid) {
			return fmt.Errorf("freerouter is already running (PID: %d)", pid)
		}
		m.log.Warn("Removing stale PID file", zap.Int("pid", pid))
		_ = os.Remove(m.PIDFile())
	}

	// LiteLLM prioritizes CONFIG_FILE_PATH over --config, which silently
	// routes around the freshly generated config.
	if v, ok := os.LookupEnv("CONFIG_FILE_PATH"); ok {
		m.log.Warn("Removing CONFIG_FILE_PATH env var", zap.String("was", v))
		_ = os.Unsetenv("CONFIG_FILE_PATH")
	}

	host, port := m.Addr()

	logHandle, err := os.OpenFile(m.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logHandle.Close()

	offset, err := logHandle.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to seek log file: %w", err)
	}

	cmd := exec.Command("litellm", "--config", m.configPath, "--port", port, "--host", host)
	cmd.Stdout = logHandle
	cmd.Stderr = logHandle
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errors.New("litellm not found, install it with: pip install litellm")
		}
		return fmt.Errorf("failed to start litellm: %w", err)
	}

	pid := cmd.Process.Pid
	if err := os.WriteFile(m.PIDFile(), []byte(strconv.Itoa(pid)), 0o644); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to write pid file: %w", err)
	}
	// The child is detached; reap it in the background so a quick exit
	// does not leave a zombie.
	go func() { _ = cmd.Wait() }()

	m.log.Info("Waiting for service to start",
		zap.Int("pid", pid),
		zap.String("host", host),
		zap.String("port", port))

	if err := m.awaitReady(ctx, offset, pid); err != nil {
		_ = os.Remove(m.PIDFile())
		return err
	}
	return nil
}

// awaitReady polls the log file from offset until the ready marker shows
// up, the process dies, or the startup timeout expires.
func (m *Manager) awaitReady(ctx context.Context, offset int64, pid int) error {
	deadline := time.Now().Add(startupTimeout)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}

		chunk, n, err := readFrom(m.LogFile(), offset)
		if err != nil {
			continue
		}
		offset = n

		for _, line := range strings.Split(chunk, "\n") {
			if strings.Contains(line, readyMarker) {
				return nil
			}
			lower := strings.ToLower(line)
			if strings.Contains(lower, "error") && strings.Contains(lower, "failed") {
				_ = syscall.Kill(pid, syscall.SIGTERM)
				return fmt.Errorf("startup failed: %s", strings.TrimSpace(line))
			}
		}

		if !processAlive(pid) {
			return fmt.Errorf("litellm exited during startup, check %s", m.LogFile())
		}
	}
	return fmt.Errorf("startup timeout after %s, check %s", startupTimeout, m.LogFile())
}

func readFrom(path string, offset int64) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", offset, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return "", offset, err
	}
	buf := make([]byte, 64*1024)
	var out strings.Builder
	pos := offset
	for {
		n, err := f.Read(buf)
		out.Write(buf[:n])
		pos += int64(n)
		if err != nil {
			break
		}
	}
	return out.String(), pos, nil
}

// Stop sends SIGTERM and waits for the process to exit.
func (m *Manager) Stop() error {
	pid, err := m.ReadPID()
	if err != nil {
		return errors.New("freerouter is not running")
	}
	if !processAlive(pid) {
		_ = os.Remove(m.PIDFile())
		return fmt.Errorf("freerouter process (PID: %d) is not running", pid)
	}

	m.log.Info("Stopping freerouter service", zap.Int("pid", pid))
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process: %w", err)
	}

	for i := 0; i < 10; i++ {
		if !processAlive(pid) {
			_ = os.Remove(m.PIDFile())
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}

	return fmt.Errorf("failed to stop service gracefully, use: kill -9 %d", pid)
}

// Status describes the supervised process for display.
type Status struct {
	Running    bool
	StalePID   bool
	PID        int
	URL        string
	Uptime     time.Duration
	ModelCount int
	LogSizeKB  float64
}

// Status collects the current service state. A stale PID file is removed
// and reported as not running.
func (m *Manager) Status() (*Status, error) {
	st := &Status{}

	pid, err := m.ReadPID()
	if err != nil {
		return st, nil
	}
	if !processAlive(pid) {
		st.StalePID = true
		st.PID = pid
		_ = os.Remove(m.PIDFile())
		return st, nil
	}

	st.Running = true
	st.PID = pid
	st.URL = m.URL()

	if info, err := os.Stat(m.PIDFile()); err == nil {
		st.Uptime = time.Since(info.ModTime())
	}
	if data, err := os.ReadFile(m.configPath); err == nil {
		var doc schema.Document
		if yaml.Unmarshal(data, &doc) == nil {
			st.ModelCount = len(doc.ModelList)
		}
	}
	if info, err := os.Stat(m.LogFile()); err == nil {
		st.LogSizeKB = float64(info.Size()) / 1024
	}
	return st, nil
}

// FormatUptime renders a duration the way humans read service uptime.
func FormatUptime(d time.Duration) string {
	seconds := int(d.Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d minute%s", seconds/60, plural(seconds/60))
	case seconds < 86400:
		h, min := seconds/3600, (seconds%3600)/60
		return fmt.Sprintf("%d hour%s %d minute%s", h, plural(h), min, plural(min))
	default:
		days, h := seconds/86400, (seconds%86400)/3600
		return fmt.Sprintf("%d day%s %d hour%s", days, plural(days), h, plural(h))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
