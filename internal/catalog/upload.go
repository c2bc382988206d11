package catalog

import (
	"bytes"
	"image"
	"net/http"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

// sniffImage verifies that the upload is an image and returns a file
// extension for retention. The classic formats are additionally decoded
// (config only) so a renamed text file does not slip through; webp is
// accepted on the sniff alone since stdlib has no webp decoder.
func sniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrBadUpload("empty upload")
	}
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg", decodeCheck(data)
	case "image/png":
		return ".png", decodeCheck(data)
	case "image/gif":
		return ".gif", decodeCheck(data)
	case "image/webp":
		return ".webp", nil
	}
	return "", ErrBadUpload("cannot open uploaded file as an image")
}

func decodeCheck(data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return ErrBadUpload("cannot open uploaded file as an image")
	}
	return nil
}

// retainUpload writes the upload under dir with a fresh UUID name and
// returns the stored path. An empty dir disables retention.
func retainUpload(dir string, data []byte, ext string) (string, error) {
	if dir == "" {
		return "", nil
	}
	path := filepath.Join(dir, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
