// File: pkg/collect/collect.go

// Package collect implements the collector: a single synchronous pass that
// walks a fixed directory tree, gathers every file matching a fixed suffix,
// renders the files as fenced blocks with path headers, and hands the
// combined text to the system clipboard in one write.
package collect

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Clipboard is the program's sole output channel. It is accepted as an
// interface so tests can observe the exact text a run produces.
type Clipboard interface {
	// Copy places text on the clipboard in a single atomic write.
	Copy(text string) error
}

// Run executes one collection pass: traverse, render, copy. The clipboard
// is only written after every matched file has been read successfully, so
// a failing run never commits partial results.
func Run(cfg Config, clip Clipboard, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting collection",
		zap.String("root", cfg.Root),
		zap.String("suffix", cfg.Suffix))

	blocks, err := CollectFiles(cfg.Root, cfg.Suffix, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}

	// An empty tree yields an empty string, which is still copied.
	text := Render(blocks)

	if err := clip.Copy(text); err != nil {
		logger.Error("Failed to write clipboard", zap.Error(err))
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	logger.Info("Copied combined sources to clipboard",
		zap.Int("fileCount", len(blocks)),
		zap.Int("textBytes", len(text)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
