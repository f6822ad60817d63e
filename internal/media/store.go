package media

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// Store keeps uploaded photos and generated QR images on disk under one
// root, grouped per resource. Stored paths are relative to the root so the
// same values work as URL paths behind the static file route.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create upload dir: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// SaveUpload stores a multipart image under uploads/<resource>/ with a
// generated name and returns the relative path.
func (s *Store) SaveUpload(c *gin.Context, resource string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".png"
	}

	rel := filepath.Join(resource, uuid.NewString()+ext)
	dst := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("unable to create resource dir: %w", err)
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("unable to store upload: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

// SaveQRCode renders content as a QR PNG for the given asset key and
// returns the relative path. The key is sanitized since plate numbers
// contain spaces.
func (s *Store) SaveQRCode(resource, key, content string) (string, error) {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, key)

	rel := filepath.Join("qrcode", resource+"-"+safe+".png")
	dst := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("unable to create qrcode dir: %w", err)
	}
	if err := qrcode.WriteFile(content, qrcode.Medium, 256, dst); err != nil {
		return "", fmt.Errorf("unable to render qr code: %w", err)
	}

	return filepath.ToSlash(rel), nil
}

// Remove deletes a stored file; missing files are not an error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
