package thumbnailrepo

import (
	"fmt"
	"os"
	"path/filepath"
)

const pkg = "thumbnailRepo/"

type repository struct {
	basePath string
}

func NewRepository(basePath string) *repository {
	return &repository{basePath: basePath}
}

func (r *repository) path(canvasID string) string {
	return filepath.Join(r.basePath, canvasID+".png")
}

func (r *repository) SaveThumbnail(canvasID string, png []byte) error {
	op := pkg + "SaveThumbnail"

	if err := os.MkdirAll(r.basePath, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(r.path(canvasID), png, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) LoadThumbnail(canvasID string) ([]byte, error) {
	op := pkg + "LoadThumbnail"

	png, err := os.ReadFile(r.path(canvasID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return png, nil
}

