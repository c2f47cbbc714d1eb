package cloudinary

import (
	"context"
	"fmt"
	"io"

	sdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Formatos que el host acepta; cualquier otro se rechaza en el upload.
var allowedFormats = api.CldAPIArray{"jpg", "jpeg", "png", "gif", "webp", "svg"}

// UploadResult es el subconjunto de la respuesta del host que persistimos
// como Media.
type UploadResult struct {
	PublicID  string
	URL       string
	SecureURL string
	Format    string
	Bytes     int64
	Width     int
	Height    int
	Folder    string
}

// Client envuelve el SDK de Cloudinary. Se inyecta en el servicio de upload
// detrás de una interfaz para poder testear con fakes.
type Client struct {
	cld *sdk.Cloudinary
}

func New(cloudName, apiKey, apiSecret string) (*Client, error) {
	cld, err := sdk.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Client{cld: cld}, nil
}

func (c *Client) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		AllowedFormats: allowedFormats,
		Transformation: "q_auto/f_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}

	return &UploadResult{
		PublicID:  resp.PublicID,
		URL:       resp.URL,
		SecureURL: resp.SecureURL,
		Format:    resp.Format,
		Bytes:     int64(resp.Bytes),
		Width:     resp.Width,
		Height:    resp.Height,
		Folder:    folder,
	}, nil
}

func (c *Client) Destroy(ctx context.Context, publicID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}
