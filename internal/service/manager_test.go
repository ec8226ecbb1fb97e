package service

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	return NewManager(filepath.Join(dir, "config.yaml"), zap.NewNop())
}

func TestReadPID(t *testing.T) {
	m := newTestManager(t)

	_, err := m.ReadPID()
	assert.Error(t, err)

	assert.NoError(t, os.WriteFile(m.PIDFile(), []byte("12345\n"), 0o644))
	pid, err := m.ReadPID()
	assert.NoError(t, err)
	assert.Equal(t, 12345, pid)
}

func TestReadPID_Malformed(t *testing.T) {
	m := newTestManager(t)
	assert.NoError(t, os.WriteFile(m.PIDFile(), []byte("not-a-pid"), 0o644))

	_, err := m.ReadPID()
	assert.Error(t, err)
}

func TestIsRunning_NoPIDFile(t *testing.T) {
	m := newTestManager(t)
	assert.False(t, m.IsRunning())
}

func TestIsRunning_OwnProcess(t *testing.T) {
	m := newTestManager(t)
	// Our own PID is always alive.
	assert.NoError(t, os.WriteFile(m.PIDFile(), []byte(strconv.Itoa(os.Getpid())), 0o644))
	assert.True(t, m.IsRunning())
}

func TestStatus_StalePIDCleanedUp(t *testing.T) {
	m := newTestManager(t)
	// PID 1 exists but we cannot signal it as a normal user; use an
	// absurdly high PID that cannot be running.
	assert.NoError(t, os.WriteFile(m.PIDFile(), []byte("4194304"), 0o644))

	st, err := m.Status()
	assert.NoError(t, err)
	assert.False(t, st.Running)
	assert.True(t, st.StalePID)

	_, statErr := os.Stat(m.PIDFile())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatus_NotRunning(t *testing.T) {
	m := newTestManager(t)
	st, err := m.Status()
	assert.NoError(t, err)
	assert.False(t, st.Running)
	assert.False(t, st.StalePID)
}

func TestStop_NotRunning(t *testing.T) {
	m := newTestManager(t)
	assert.Error(t, m.Stop())
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "45 seconds", FormatUptime(45*time.Second))
	assert.Equal(t, "1 minute", FormatUptime(90*time.Second))
	assert.Equal(t, "5 minutes", FormatUptime(5*time.Minute))
	assert.Equal(t, "2 hours 5 minutes", FormatUptime(2*time.Hour+5*time.Minute))
	assert.Equal(t, "1 day 3 hours", FormatUptime(27*time.Hour))
}
