package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

type EntityType string

const (
	EntityUser       EntityType = "user"
	EntityCocktail   EntityType = "cocktail"
	EntityIngredient EntityType = "ingredient"
)

const (
	maxUploadBytes = 5 << 20
	maxDimension   = 3000
	thumbWidth     = 300
)

var (
	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	ErrInvalidExtension = errors.New("extensión de archivo no permitida")
	ErrInvalidMIME      = errors.New("tipo de archivo no permitido")
	ErrFileTooLarge     = errors.New("el archivo excede el tamaño máximo de 5MB")
)

// Manager stores uploaded images under baseDir/<entity>/ with a
// 300px-wide thumbnail alongside under thumbs/.
type Manager struct {
	baseDir string
}

func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

func ValidEntity(s string) (EntityType, bool) {
	switch EntityType(strings.ToLower(s)) {
	case EntityUser:
		return EntityUser, true
	case EntityCocktail:
		return EntityCocktail, true
	case EntityIngredient:
		return EntityIngredient, true
	}
	return "", false
}

func (m *Manager) entityDir(entity EntityType) string {
	return filepath.Join(m.baseDir, string(entity))
}

func (m *Manager) thumbDir(entity EntityType) string {
	return filepath.Join(m.baseDir, string(entity), "thumbs")
}

func extensionAllowed(ext string) bool {
	for _, a := range allowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func mimeAllowed(mimeType string) bool {
	for _, a := range allowedMIMEs {
		if mimeType == a {
			return true
		}
	}
	return false
}

// SaveFormImage validates, decodes and stores the first file under formKey.
// Images are re-encoded as JPEG, which also drops any EXIF data.
// Returns the stored filename and the thumbnail filename.
func (m *Manager) SaveFormImage(form *multipart.Form, formKey string, entity EntityType) (string, string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		return "", "", fmt.Errorf("falta el archivo %q", formKey)
	}
	header := files[0]

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensionAllowed(ext) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}
	if header.Size > maxUploadBytes {
		return "", "", ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", "", fmt.Errorf("open %s: %w", formKey, err)
	}
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", formKey, err)
	}
	if int64(len(buf)) > maxUploadBytes {
		return "", "", ErrFileTooLarge
	}

	mimeType := http.DetectContentType(buf)
	if !mimeAllowed(mimeType) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", "", fmt.Errorf("decode %q: %w", header.Filename, err)
	}
	if err := validateDimensions(img, maxDimension, maxDimension); err != nil {
		return "", "", err
	}

	name := uuid.New().String() + ".jpg"

	dir := m.entityDir(entity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := writeJPEG(filepath.Join(dir, name), img, 90); err != nil {
		return "", "", err
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	tdir := m.thumbDir(entity)
	if err := os.MkdirAll(tdir, 0o755); err != nil {
		return name, "", fmt.Errorf("mkdir %s: %w", tdir, err)
	}
	if err := writeJPEG(filepath.Join(tdir, name), thumb, 85); err != nil {
		return name, "", err
	}

	return name, name, nil
}

func writeJPEG(path string, img image.Image, quality int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func validateDimensions(img image.Image, maxWidth, maxHeight int) error {
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		return fmt.Errorf("la imagen de %dx%d excede el máximo de %dx%d", bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	}
	return nil
}
