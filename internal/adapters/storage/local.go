package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader implements the blob store on the local filesystem. Objects
// get uuid names under <baseDir>/<dir> and are served below baseURL.
type LocalUploader struct {
	baseDir string
	baseURL string
}

func NewLocalUploader(baseDir, baseURL string) *LocalUploader {
	return &LocalUploader{
		baseDir: baseDir,
		baseURL: baseURL,
	}
}

func (u *LocalUploader) Upload(_ context.Context, file io.Reader, filename string, dir string) (string, error) {
	objectName := uuid.NewString() + filepath.Ext(filename)

	targetDir := filepath.Join(u.baseDir, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	target, err := os.Create(filepath.Join(targetDir, objectName))
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer target.Close()

	if _, err = io.Copy(target, file); err != nil {
		return "", fmt.Errorf("failed to write object file: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", u.baseURL, dir, objectName), nil
}

// Dir exposes the base directory for the static file route.
func (u *LocalUploader) Dir() string {
	return u.baseDir
}
