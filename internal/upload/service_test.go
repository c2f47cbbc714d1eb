package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tifosi-api/internal/cloudinary"
	"tifosi-api/internal/models"
)

// Magic bytes de un PNG y un GIF: suficiente para que la detección de MIME
// los reconozca como imagen sin necesidad de un archivo real.
var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifBytes = []byte("GIF89a\x01\x00\x01\x00")
)

type fakeUploader struct {
	mu         sync.Mutex
	uploads    int
	folders    []string
	destroyed  []string
	uploadErr  error
	destroyErr error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, folder string) (*cloudinary.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	f.folders = append(f.folders, folder)
	publicID := fmt.Sprintf("%s/asset-%d", folder, f.uploads)
	return &cloudinary.UploadResult{
		PublicID:  publicID,
		URL:       "http://cdn.example.com/" + publicID + ".png",
		SecureURL: "https://cdn.example.com/" + publicID + ".png",
		Format:    "png",
		Bytes:     1234,
		Width:     640,
		Height:    480,
		Folder:    folder,
	}, nil
}

func (f *fakeUploader) Destroy(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakeMediaStore struct {
	mu       sync.Mutex
	upserted []*models.Media
	deleted  []string
}

func (f *fakeMediaStore) UpsertByPublicID(ctx context.Context, media *models.Media) (*models.Media, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, media)
	return media, nil
}

func (f *fakeMediaStore) DeleteByPublicID(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newTestService() (*Service, *fakeUploader, *fakeMediaStore) {
	uploader := &fakeUploader{}
	store := &fakeMediaStore{}
	return NewService(uploader, store), uploader, store
}

func TestUploadImage(t *testing.T) {
	service, uploader, store := newTestService()

	media, err := service.UploadImage(context.Background(), ImageInput{
		Filename: "camiseta.png",
		Data:     pngBytes,
		Folder:   "products",
		Alt:      "Camiseta titular",
	})
	require.NoError(t, err)

	assert.Equal(t, "products/asset-1", media.PublicID)
	assert.Equal(t, "png", media.Format)
	assert.Equal(t, "products", media.Folder)
	assert.Equal(t, "Camiseta titular", media.Alt)
	assert.Equal(t, []string{"products"}, uploader.folders)
	require.Len(t, store.upserted, 1)
}

func TestUploadImageDefaultFolder(t *testing.T) {
	service, uploader, _ := newTestService()

	_, err := service.UploadImage(context.Background(), ImageInput{Filename: "a.gif", Data: gifBytes})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultFolder}, uploader.folders)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	service, uploader, store := newTestService()

	_, err := service.UploadImage(context.Background(), ImageInput{
		Filename: "nota.txt",
		Data:     []byte("esto es texto plano, no una imagen"),
	})
	assert.ErrorIs(t, err, ErrNotAnImage)
	// La validación corre antes de tocar el host externo
	assert.Zero(t, uploader.uploads)
	assert.Empty(t, store.upserted)
}

func TestUploadImageRejectsEmptyFile(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UploadImage(context.Background(), ImageInput{Filename: "vacio.png"})
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	service, uploader, _ := newTestService()

	data := make([]byte, MaxFileSize+1)
	copy(data, pngBytes)
	_, err := service.UploadImage(context.Background(), ImageInput{Filename: "enorme.png", Data: data})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Zero(t, uploader.uploads)
}

func TestUploadImagePropagatesUploaderError(t *testing.T) {
	service, uploader, store := newTestService()
	uploader.uploadErr = errors.New("host unavailable")

	_, err := service.UploadImage(context.Background(), ImageInput{Filename: "a.png", Data: pngBytes})
	assert.Error(t, err)
	assert.Empty(t, store.upserted)
}

func TestUploadBatchPartialFailure(t *testing.T) {
	service, _, store := newTestService()

	inputs := []ImageInput{
		{Filename: "uno.png", Data: pngBytes},
		{Filename: "nota.txt", Data: []byte("texto plano que no es imagen")},
		{Filename: "dos.gif", Data: gifBytes},
	}

	results, err := service.UploadBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Los resultados mantienen el orden de entrada
	assert.True(t, results[0].Success)
	assert.Equal(t, "uno.png", results[0].Filename)
	assert.NotNil(t, results[0].Media)

	assert.False(t, results[1].Success)
	assert.Equal(t, "nota.txt", results[1].Filename)
	assert.Equal(t, ErrNotAnImage.Error(), results[1].Error)
	assert.Nil(t, results[1].Media)

	assert.True(t, results[2].Success)
	assert.Len(t, store.upserted, 2)
}

func TestUploadBatchLimits(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UploadBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFile)

	inputs := make([]ImageInput, MaxBatchSize+1)
	for i := range inputs {
		inputs[i] = ImageInput{Filename: fmt.Sprintf("%d.png", i), Data: pngBytes}
	}
	_, err = service.UploadBatch(context.Background(), inputs)
	assert.Error(t, err)
}

func TestDeleteImage(t *testing.T) {
	service, uploader, store := newTestService()

	require.NoError(t, service.DeleteImage(context.Background(), "products/asset-1"))
	assert.Equal(t, []string{"products/asset-1"}, uploader.destroyed)
	assert.Equal(t, []string{"products/asset-1"}, store.deleted)
}

func TestDeleteImageRemoteFailureSkipsLocal(t *testing.T) {
	service, uploader, store := newTestService()
	uploader.destroyErr = errors.New("host unavailable")

	err := service.DeleteImage(context.Background(), "products/asset-1")
	assert.Error(t, err)
	// Si el borrado remoto falla, el registro local queda intacto
	assert.Empty(t, store.deleted)
}
