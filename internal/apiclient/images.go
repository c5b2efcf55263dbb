package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

const (
	pathAdminImages  = "/admin/images"
	pathPublicImages = "/images"
)

// ImageMetadata is the editable part of an image asset.
type ImageMetadata struct {
	Category string `json:"category"`
	AltText  string `json:"alt_text"`
}

func categoryQuery(category string) url.Values {
	if category == "" {
		return nil
	}
	return url.Values{"category": {category}}
}

// ListImages returns managed images, optionally narrowed to one category.
func (c *Client) ListImages(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	var out []domain.ImageAsset
	if err := c.doJSON(ctx, "images.list", http.MethodGet, pathAdminImages, categoryQuery(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadImage sends the file as multipart/form-data with fields file, category and alt_text.
func (c *Client) UploadImage(ctx context.Context, upload domain.ImageUpload) (*domain.ImageAsset, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.Filename))
	header.Set("Content-Type", upload.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := mw.WriteField("category", upload.Category); err != nil {
		return nil, fmt.Errorf("failed to write category: %w", err)
	}
	if err := mw.WriteField("alt_text", upload.AltText); err != nil {
		return nil, fmt.Errorf("failed to write alt text: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	resp, err := c.doRequest(ctx, request{
		op:          "images.upload",
		method:      http.MethodPost,
		path:        pathAdminImages,
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out domain.ImageAsset
	if err := decodeResponse(resp, http.MethodPost, pathAdminImages, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateImage changes category and alt text of an image.
func (c *Client) UpdateImage(ctx context.Context, id string, meta ImageMetadata) (*domain.ImageAsset, error) {
	var out domain.ImageAsset
	if err := c.doJSON(ctx, "images.update", http.MethodPut, idPath(pathAdminImages, id), nil, meta, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImage removes an image.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, "images.delete", http.MethodDelete, idPath(pathAdminImages, id), nil, nil, nil)
}

// ListPublicImages returns the public image catalogue used by the image picker.
func (c *Client) ListPublicImages(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	var out []domain.ImageAsset
	if err := c.doJSON(ctx, "images.public_list", http.MethodGet, pathPublicImages, categoryQuery(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
