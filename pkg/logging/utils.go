/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Log file retention for statust. Removes the oldest log files beyond the
configured limit and gzip-compresses finished logs.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// LogManager applies retention to a log directory
type LogManager struct {
	logDir   string
	maxFiles int
}

// NewLogManager creates a log manager for the config's output directory
func NewLogManager(config *LoggerConfig) *LogManager {
	return &LogManager{
		logDir:   config.OutputDir,
		maxFiles: config.MaxFiles,
	}
}

// logFiles lists plain and compressed log files, oldest first
func (lm *LogManager) logFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(lm.logDir, LogFilePrefix+"*.log*"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob log files: %w", err)
	}

	modTimes := make(map[string]int64, len(files))
	for _, file := range files {
		if stat, err := os.Stat(file); err == nil {
			modTimes[file] = stat.ModTime().UnixNano()
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return modTimes[files[i]] < modTimes[files[j]]
	})
	return files, nil
}

// CleanupOldLogs removes the oldest log files until at most maxFiles
// remain. A limit of zero keeps everything.
func (lm *LogManager) CleanupOldLogs() error {
	if lm.logDir == "" || lm.maxFiles == 0 {
		return nil
	}

	files, err := lm.logFiles()
	if err != nil {
		return err
	}
	if len(files) <= lm.maxFiles {
		return nil
	}

	for _, file := range files[:len(files)-lm.maxFiles] {
		if err := os.Remove(file); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", file, err)
		}
	}

	return nil
}

// CompressOldLogs gzips every uncompressed log file except active
func (lm *LogManager) CompressOldLogs(active string) error {
	if lm.logDir == "" {
		return nil
	}

	files, err := lm.logFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		if file == active || !strings.HasSuffix(file, ".log") {
			continue
		}
		if err := compressFile(file); err != nil {
			return fmt.Errorf("failed to compress %s: %w", file, err)
		}
	}

	return nil
}

// compressFile replaces path with path.gz
func compressFile(path string) error {
	source, err := os.Open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	compressed, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer compressed.Close()

	gzipWriter := gzip.NewWriter(compressed)
	if _, err := io.Copy(gzipWriter, source); err != nil {
		gzipWriter.Close()
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}
	if err := compressed.Close(); err != nil {
		return err
	}

	source.Close()
	return os.Remove(path)
}
