package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mmdsnb/freerouter/internal/logger"
	"go.uber.org/zap"
)

const backupsToKeep = 5

// backupConfig copies the current config aside with a timestamp suffix and
// prunes old backups. Missing config is not an error.
func backupConfig(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err != nil {
		return "", nil
	}

	stamp := time.Now().Format("20060102_150405")
	backupPath := fmt.Sprintf("%s.backup.%s", configPath, stamp)
	if err := copyFile(configPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	logger.Get().Info("Backup created",
		zap.String("backup", filepath.Base(backupPath)),
		zap.String("restore_with", "freerouter restore "+filepath.Base(backupPath)))

	cleanupOldBackups(configPath)
	return backupPath, nil
}

// cleanupOldBackups keeps only the most recent backups.
func cleanupOldBackups(configPath string) {
	backups := listBackups(configPath)
	for i := backupsToKeep; i < len(backups); i++ {
		if err := os.Remove(backups[i]); err != nil {
			logger.Get().Warn("Failed to remove old backup",
				zap.String("backup", filepath.Base(backups[i])),
				zap.Error(err))
		}
	}
}

// listBackups returns backup files for configPath, newest first.
func listBackups(configPath string) []string {
	matches, _ := filepath.Glob(configPath + ".backup.*")
	sort.Slice(matches, func(i, j int) bool {
		a, _ := os.Stat(matches[i])
		b, _ := os.Stat(matches[j])
		if a == nil || b == nil {
			return matches[i] > matches[j]
		}
		return a.ModTime().After(b.ModTime())
	})
	return matches
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
