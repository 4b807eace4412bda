// File: pkg/collect/traversal.go
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// CollectFiles walks the tree rooted at root and returns a FileBlock for
// every regular file whose name ends with suffix, in the lexical order
// filepath.WalkDir visits them. Any traversal error, read error, or
// non-text content aborts the walk immediately; no file is ever skipped.
func CollectFiles(root, suffix string, logger *zap.Logger) ([]FileBlock, error) {
	var blocks []FileBlock
	logger.Debug("Starting file traversal", zap.String("root", root), zap.String("suffix", suffix))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(readErr))
			return fmt.Errorf("error reading file %s: %w", path, readErr)
		}

		if !isText(data) {
			logger.Error("File content is not decodable as text", zap.String("filePath", path))
			return fmt.Errorf("%s: %w", path, ErrNotText)
		}

		blocks = append(blocks, FileBlock{Path: normalizePath(path), Content: string(data)})
		logger.Debug("Collected file",
			zap.String("filePath", path),
			zap.Int("contentSizeBytes", len(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed file traversal", zap.Int("matchedFiles", len(blocks)))
	return blocks, nil
}

// normalizePath converts OS-specific separators to forward slashes so the
// rendered headers are identical across platforms.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
