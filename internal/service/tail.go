package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TailLog follows the service log from its current end, invoking fn for
// each complete new line. It returns when ctx is cancelled or the
// supervised process exits. fsnotify wakes the reader on writes; a slow
// ticker covers missed events and liveness checks.
func (m *Manager) TailLog(ctx context.Context, fn func(line string)) error {
	f, err := os.Open(m.LogFile())
	if err != nil {
		return fmt.Errorf("log file not found: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(m.LogFile()); err != nil {
		return fmt.Errorf("failed to watch log file: %w", err)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var pending string
	drain := func() {
		buf := make([]byte, 32*1024)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				pending += string(buf[:n])
				for {
					idx := strings.IndexByte(pending, '\n')
					if idx < 0 {
						break
					}
					fn(pending[:idx])
					pending = pending[idx+1:]
				}
			}
			if err != nil {
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				drain()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.log.Warn("Log watcher error: " + err.Error())
		case <-ticker.C:
			drain()
			if !m.IsRunning() {
				drain()
				return nil
			}
		}
	}
}
