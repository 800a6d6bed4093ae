// Package upload stores avatar images as opaque reference strings.
// The Store interface keeps the rest of the system independent of where
// the bytes live; DiskStore backs them with a local directory that the
// HTTP layer serves statically.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxAvatarSize is the upload cap for avatar images.
const MaxAvatarSize = 5 << 20 // 5MB

var ErrUnsupportedFileType = errors.New("only images (jpeg, jpg, png, gif) are allowed")

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Store persists an uploaded file and returns its reference string.
type Store interface {
	Save(originalName string, r io.Reader) (string, error)
}

// DiskStore writes uploads to a local directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save stores the file under a timestamped name and returns the reference
// (e.g. "uploads/1625098765432.jpg") that is persisted on the user record.
func (s *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxAvatarSize)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	// References always use forward slashes regardless of host OS.
	return "uploads/" + filename, nil
}
