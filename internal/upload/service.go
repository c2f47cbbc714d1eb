package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"tifosi-api/internal/cloudinary"
	"tifosi-api/internal/models"
)

const (
	// MaxFileSize limita cada binario a 5MB.
	MaxFileSize = 5 << 20
	// MaxBatchSize limita la cantidad de archivos por request.
	MaxBatchSize = 10
	// DefaultFolder es la carpeta destino cuando el cliente no manda una.
	DefaultFolder = "uploads"
)

var (
	ErrNoFile       = errors.New("no file provided")
	ErrNotAnImage   = errors.New("only image files are allowed")
	ErrFileTooLarge = fmt.Errorf("file exceeds the %dMB limit", MaxFileSize>>20)
)

// Uploader sube y elimina assets en el host externo.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*cloudinary.UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// MediaStore persiste la metadata de los assets.
type MediaStore interface {
	UpsertByPublicID(ctx context.Context, media *models.Media) (*models.Media, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}

// Service es el pipeline de ingesta: valida el binario, lo sube al host y
// refleja la metadata en la colección de media.
type Service struct {
	uploader Uploader
	media    MediaStore
}

func NewService(uploader Uploader, media MediaStore) *Service {
	return &Service{uploader: uploader, media: media}
}

// ImageInput es un binario a subir junto con su metadata opcional.
type ImageInput struct {
	Filename string
	Data     []byte
	Folder   string
	Alt      string
	Caption  string
}

// UploadImage valida el archivo, lo sube y hace upsert del registro Media
// por public_id. La validación corre antes de tocar el host externo.
func (s *Service) UploadImage(ctx context.Context, in ImageInput) (*models.Media, error) {
	if err := validateImage(in.Data); err != nil {
		return nil, err
	}

	folder := in.Folder
	if folder == "" {
		folder = DefaultFolder
	}

	result, err := s.uploader.Upload(ctx, bytes.NewReader(in.Data), folder)
	if err != nil {
		return nil, err
	}

	media := &models.Media{
		PublicID:  result.PublicID,
		URL:       result.URL,
		SecureURL: result.SecureURL,
		Format:    result.Format,
		Bytes:     result.Bytes,
		Width:     result.Width,
		Height:    result.Height,
		Alt:       in.Alt,
		Caption:   in.Caption,
		Folder:    folder,
	}
	if result.Folder != "" {
		media.Folder = result.Folder
	}

	return s.media.UpsertByPublicID(ctx, media)
}

// BatchItem es el resultado individual de un upload dentro de un batch.
type BatchItem struct {
	Filename string        `json:"filename"`
	Success  bool          `json:"success"`
	Media    *models.Media `json:"media,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// UploadBatch sube cada imagen de forma independiente y concurrente.
// La falla de un item no voltea el batch: cada resultado reporta su estado.
func (s *Service) UploadBatch(ctx context.Context, inputs []ImageInput) ([]BatchItem, error) {
	if len(inputs) == 0 {
		return nil, ErrNoFile
	}
	if len(inputs) > MaxBatchSize {
		return nil, fmt.Errorf("a maximum of %d images per request is allowed", MaxBatchSize)
	}

	results := make([]BatchItem, len(inputs))
	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in ImageInput) {
			defer wg.Done()
			media, err := s.UploadImage(ctx, in)
			if err != nil {
				results[i] = BatchItem{Filename: in.Filename, Error: err.Error()}
				return
			}
			results[i] = BatchItem{Filename: in.Filename, Success: true, Media: media}
		}(i, in)
	}
	wg.Wait()

	return results, nil
}

// DeleteImage borra primero el asset remoto y después el registro local.
// Si el segundo paso falla no hay compensación (gap aceptado).
func (s *Service) DeleteImage(ctx context.Context, publicID string) error {
	if err := s.uploader.Destroy(ctx, publicID); err != nil {
		return err
	}
	return s.media.DeleteByPublicID(ctx, publicID)
}

func validateImage(data []byte) error {
	if len(data) == 0 {
		return ErrNoFile
	}
	if len(data) > MaxFileSize {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return ErrNotAnImage
	}
	return nil
}
