package gen

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files, creating their directories when
// needed. Files whose content did not change are left alone so their
// modification time does not trigger watchers and build caches.
// It returns how many files were written.
func WriteFiles(files []GeneratedFile) (int, error) {
	written := 0

	for _, file := range files {
		if file.Dir != "" {
			if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
				return written, fmt.Errorf("creating output directory: %w", err)
			}
		}

		outputPath := file.Path()

		if old, err := os.ReadFile(outputPath); err == nil && bytes.Equal(old, file.Content) {
			Logger().Debug("unchanged", zap.String("path", outputPath))
			continue
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		Logger().Info("wrote", zap.String("path", outputPath))

		written++
	}

	return written, nil
}
