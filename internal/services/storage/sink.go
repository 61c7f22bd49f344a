package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ImagesDir is the directory under the static root holding generated images.
const ImagesDir = "images"

var ErrUploadFailed = errors.New("upload failed")

// Sink persists generated image bytes and returns a reference that can be
// stored in a recipe's image_url.
type Sink interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// LocalSink writes images below <staticDir>/images and returns the path the
// static file server exposes them under.
type LocalSink struct {
	dir       string
	urlPrefix string
}

func NewLocalSink(staticDir string) *LocalSink {
	return &LocalSink{
		dir:       filepath.Join(staticDir, ImagesDir),
		urlPrefix: "/static/" + ImagesDir + "/",
	}
}

func (s *LocalSink) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}
	return s.urlPrefix + name, nil
}

// DetectContentType recognises PNG and falls back to JPEG.
func DetectContentType(data []byte) string {
	if len(data) > 4 && string(data[:4]) == "\x89PNG" {
		return "image/png"
	}
	return "image/jpeg"
}
