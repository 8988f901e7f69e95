// Package document reads and overwrites the target notes file as a whole.
package document

import (
	"errors"
	"fmt"
	"os"
)

// ErrDocumentMissing is returned when the target document does not exist
var ErrDocumentMissing = errors.New("target document not found")

// Read returns the whole content of the document at path
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDocumentMissing, path)
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Write overwrites the document at path in place, keeping its permissions.
// There is no locking and no atomic rename.
func Write(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
