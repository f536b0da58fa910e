package gen

import (
	"strings"
)

// UnformattedSuffix marks sidecar files holding source that go/format
// rejected. It keeps the .go extension for syntax highlighting.
const UnformattedSuffix = ".unformatted.go"

// writeDebugUnformatted writes the raw template output of f beside its
// target. Callers only log the error.
func writeDebugUnformatted(f GeneratedFile) error {
	if f.Filename == "" {
		return nil
	}

	f.Filename = strings.TrimSuffix(f.Filename, ".go") + UnformattedSuffix

	_, err := WriteFiles([]GeneratedFile{f})

	return err
}
