// Package uploads stores profile and post images.
package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	FolderPosts = "posts"
	FolderUsers = "users"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedExt = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Store saves an uploaded image and returns the path it is served under,
// relative to the public root (e.g. "images/posts/<uuid>.png").
type Store interface {
	Save(file *multipart.FileHeader, folder string) (string, error)
}

// CheckImage accepts png and jpeg files by extension.
func CheckImage(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExt[ext]; !ok {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}

type Disk struct {
	root string
}

var _ Store = (*Disk)(nil)

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Root is the directory served as the public root.
func (d *Disk) Root() string { return d.root }

func (d *Disk) Save(file *multipart.FileHeader, folder string) (string, error) {
	ext, err := CheckImage(file.Filename)
	if err != nil {
		return "", err
	}

	rel := path.Join("images", folder, uuid.NewString()+ext)
	dst := filepath.Join(d.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := fasthttp.SaveMultipartFile(file, dst); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return rel, nil
}

// Memory records uploads without touching the disk.
type Memory struct {
	mu    sync.Mutex
	Files map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{Files: make(map[string]string)}
}

func (m *Memory) Save(file *multipart.FileHeader, folder string) (string, error) {
	ext, err := CheckImage(file.Filename)
	if err != nil {
		return "", err
	}
	rel := path.Join("images", folder, uuid.NewString()+ext)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Files[rel] = file.Filename
	return rel, nil
}
