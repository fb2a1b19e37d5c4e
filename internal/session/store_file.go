package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// fileStore is the file-backed [Store]. The slot is a single decimal string
// holding the session start time in unix milliseconds.
type fileStore struct {
	path string
}

// NewFileStore constructs a [Store] persisting the slot at path. The parent
// directory is created on the first Write.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Read() (time.Time, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error reading session slot file: %w", err)
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		// A corrupt slot is indistinguishable from no slot.
		return time.Time{}, false, nil
	}

	return time.UnixMilli(ms), true, nil
}

func (s *fileStore) Write(startedAt time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session slot directory: %w", err)
	}

	data := []byte(strconv.FormatInt(startedAt.UnixMilli(), 10))
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing session slot file: %w", err)
	}

	return nil
}

func (s *fileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing session slot file: %w", err)
	}

	return nil
}
