package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/upload"
)

// uploadService es el pipeline de ingesta visto desde el handler.
type uploadService interface {
	UploadImage(ctx context.Context, in upload.ImageInput) (*models.Media, error)
	UploadBatch(ctx context.Context, inputs []upload.ImageInput) ([]upload.BatchItem, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type UploadHandler struct {
	service uploadService
}

func NewUploadHandler(service uploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// POST /api/upload/single
func (h *UploadHandler) Single(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided", err)
		return
	}
	// Rechazar por el tamaño declarado antes de leer el binario a memoria
	if fileHeader.Size > upload.MaxFileSize {
		respondError(c, http.StatusBadRequest, upload.ErrFileTooLarge.Error(), nil)
		return
	}

	data, err := readFile(fileHeader)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error reading file", err)
		return
	}

	media, err := h.service.UploadImage(c.Request.Context(), upload.ImageInput{
		Filename: fileHeader.Filename,
		Data:     data,
		Folder:   c.PostForm("folder"),
		Alt:      c.PostForm("alt"),
		Caption:  c.PostForm("caption"),
	})
	if err != nil {
		if isClientUploadError(err) {
			respondError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error uploading image", err)
		return
	}

	respondCreated(c, "Image uploaded and saved successfully", media)
}

// POST /api/upload/multiple
// Sube hasta 10 imágenes; las fallas individuales no voltean el batch.
func (h *UploadHandler) Multiple(c *gin.Context) {
	inputs, ok := h.collectFiles(c, upload.DefaultFolder)
	if !ok {
		return
	}

	results, err := h.service.UploadBatch(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	uploaded := make([]*models.Media, 0, len(results))
	failed := make([]upload.BatchItem, 0)
	for _, r := range results {
		if r.Success {
			uploaded = append(uploaded, r.Media)
		} else {
			failed = append(failed, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": batchMessage(len(uploaded), len(failed)),
		"data": gin.H{
			"media":  uploaded,
			"failed": failed,
		},
	})
}

// POST /api/upload/upload-images
// Variante para el alta de productos: responde las URLs listas para usar.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	inputs, ok := h.collectFiles(c, "products")
	if !ok {
		return
	}

	results, err := h.service.UploadBatch(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	imageURLs := make([]string, 0, len(results))
	failed := make([]upload.BatchItem, 0)
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
			continue
		}
		if r.Media.SecureURL != "" {
			imageURLs = append(imageURLs, r.Media.SecureURL)
		} else {
			imageURLs = append(imageURLs, r.Media.URL)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": batchMessage(len(imageURLs), len(failed)),
		"data": gin.H{
			"imageUrls": imageURLs,
			"failed":    failed,
		},
	})
}

// DELETE /api/upload/:publicId
func (h *UploadHandler) Delete(c *gin.Context) {
	publicID, err := url.PathUnescape(c.Param("publicId"))
	if err != nil || publicID == "" {
		respondError(c, http.StatusBadRequest, "Public ID is required", err)
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), publicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Media not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error deleting image", err)
		return
	}

	respondMessage(c, "Image deleted successfully from Cloudinary and database")
}

// collectFiles arma los inputs del batch desde el multipart form. El alt por
// defecto es el nombre del archivo sin extensión.
func (h *UploadHandler) collectFiles(c *gin.Context, defaultFolder string) ([]upload.ImageInput, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "No files provided", err)
		return nil, false
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "No images uploaded", nil)
		return nil, false
	}
	// Los límites de cantidad y tamaño se chequean sobre los headers del
	// form, antes de bufferear ningún archivo
	if len(files) > upload.MaxBatchSize {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("a maximum of %d images per request is allowed", upload.MaxBatchSize), nil)
		return nil, false
	}
	for _, fileHeader := range files {
		if fileHeader.Size > upload.MaxFileSize {
			respondError(c, http.StatusBadRequest, upload.ErrFileTooLarge.Error(), nil)
			return nil, false
		}
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = defaultFolder
	}

	inputs := make([]upload.ImageInput, 0, len(files))
	for i, fileHeader := range files {
		data, err := readFile(fileHeader)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error reading files", err)
			return nil, false
		}
		inputs = append(inputs, upload.ImageInput{
			Filename: fileHeader.Filename,
			Data:     data,
			Folder:   folder,
			Alt:      trimExtension(fileHeader.Filename),
			Caption:  fmt.Sprintf("Image %d for product", i+1),
		})
	}
	return inputs, true
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func trimExtension(filename string) string {
	if dot := strings.LastIndex(filename, "."); dot > 0 {
		return filename[:dot]
	}
	return filename
}

func batchMessage(succeeded, failed int) string {
	msg := fmt.Sprintf("%d images uploaded successfully", succeeded)
	if failed > 0 {
		msg += fmt.Sprintf(", %d failed", failed)
	}
	return msg
}

func isClientUploadError(err error) bool {
	return errors.Is(err, upload.ErrNoFile) ||
		errors.Is(err, upload.ErrNotAnImage) ||
		errors.Is(err, upload.ErrFileTooLarge)
}
