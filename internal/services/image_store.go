package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// ImageStore names uploaded product images and maps them to public URLs.
type ImageStore struct {
	Dir     string
	BaseURL string // e.g. https://shop.example.com; images live under /images
	now     func() time.Time
}

func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), now: time.Now}, nil
}

// Save writes fh under a generated name using save (normally fiber's
// Ctx.SaveFile) and returns the stored name and its public URL.
func (s *ImageStore) Save(field string, fh *multipart.FileHeader, save func(*multipart.FileHeader, string) error) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", "", invalid(field, "unsupported image type")
	}
	name := fmt.Sprintf("%s_%d%s", field, s.now().UnixMilli(), ext)
	if err := save(fh, filepath.Join(s.Dir, name)); err != nil {
		return "", "", err
	}
	return name, s.BaseURL + "/images/" + name, nil
}
