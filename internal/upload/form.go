package upload

import (
	"errors"
	"fmt"
	"net/http"
)

// FromRequest extracts an optional file from a multipart form field and
// saves it to the store. Returns ("", nil) when no file was sent.
func FromRequest(r *http.Request, field string, store Store) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	if header.Size > MaxAvatarSize {
		return "", fmt.Errorf("file exceeds %d bytes", MaxAvatarSize)
	}

	return store.Save(header.Filename, file)
}
