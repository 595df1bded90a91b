package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/senbim-immo/admin-service/internal/config"
)

// Store saves uploaded files and returns their public URL.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
	MaxBytes() int64
}

type localStore struct {
	dir     string
	baseURL string
	maxMB   int
}

// NewLocalStore builds a disk-backed store, creating the target directory.
func NewLocalStore(cfg config.UploadConfig) (Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/"), maxMB: cfg.MaxSizeMB}, nil
}

// Save writes the file under a collision-free generated name and returns its
// URL. The original extension is kept for content-type sniffing downstream.
func (s *localStore) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	if _, err := io.Copy(f, io.LimitReader(r, s.MaxBytes()+1)); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	info, err := f.Stat()
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	if info.Size() > s.MaxBytes() {
		_ = os.Remove(path)
		return "", fmt.Errorf("file exceeds %d MB limit", s.maxMB)
	}

	return s.baseURL + "/" + name, nil
}

func (s *localStore) MaxBytes() int64 {
	if s.maxMB <= 0 {
		return 10 << 20
	}
	return int64(s.maxMB) << 20
}
