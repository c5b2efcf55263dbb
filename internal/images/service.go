package images

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

// DefaultMaxUploadBytes is the upload limit when none is configured
const DefaultMaxUploadBytes = 5 << 20

// AllowedContentTypes are the image formats the asset store accepts
var AllowedContentTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// API is the part of the promo API client this package needs
type API interface {
	ListImages(ctx context.Context, category string) ([]domain.ImageAsset, error)
	UploadImage(ctx context.Context, upload domain.ImageUpload) (*domain.ImageAsset, error)
	UpdateImage(ctx context.Context, id string, meta apiclient.ImageMetadata) (*domain.ImageAsset, error)
	DeleteImage(ctx context.Context, id string) error
	ListPublicImages(ctx context.Context, category string) ([]domain.ImageAsset, error)
}

// Service defines image asset operations
type Service interface {
	List(ctx context.Context, category string) ([]domain.ImageAsset, error)
	Upload(ctx context.Context, category, altText, filename string, data []byte) (*domain.ImageAsset, error)
	UpdateMetadata(ctx context.Context, id, category, altText string) (*domain.ImageAsset, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	Public(ctx context.Context, category string) ([]domain.ImageAsset, error)
}

type service struct {
	api       API
	maxBytes  int64
	publisher *event.Publisher
}

// NewService creates a new image service. maxBytes <= 0 uses DefaultMaxUploadBytes.
func NewService(api API, maxBytes int64, publisher *event.Publisher) Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &service{api: api, maxBytes: maxBytes, publisher: publisher}
}

// IsCategory reports whether c is a known image category
func IsCategory(c string) bool {
	for _, known := range domain.ImageCategories {
		if c == known {
			return true
		}
	}
	return false
}

func checkCategory(category string, allowEmpty bool) error {
	if category == "" && allowEmpty {
		return nil
	}
	if !IsCategory(category) {
		v := domain.NewValidationError()
		v.Add("category", fmt.Sprintf("unknown category %q", category))
		return v
	}
	return nil
}

// List returns managed images, newest first. An empty category lists all.
func (s *service) List(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	if err := checkCategory(category, true); err != nil {
		return nil, err
	}
	imgs, err := s.api.ListImages(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	sort.SliceStable(imgs, func(i, j int) bool { return imgs[i].UploadedAt.After(imgs[j].UploadedAt) })
	return imgs, nil
}

// DetectContentType sniffs data and returns its MIME type when it is an allowed image format.
func DetectContentType(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	for _, allowed := range AllowedContentTypes {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, mt.String())
}

// Upload sniffs and size-checks the file before sending it upstream.
// The file extension is rewritten to match the detected type.
func (s *service) Upload(ctx context.Context, category, altText, filename string, data []byte) (*domain.ImageAsset, error) {
	if err := checkCategory(category, false); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		v := domain.NewValidationError()
		v.Add("file", "file is empty")
		return nil, v
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileTooLarge, len(data), s.maxBytes)
	}

	contentType, err := DetectContentType(data)
	if err != nil {
		return nil, err
	}

	upload := domain.ImageUpload{
		Filename:    normalizeFilename(filename, contentType),
		Category:    category,
		AltText:     strings.TrimSpace(altText),
		ContentType: contentType,
		Data:        data,
	}

	asset, err := s.api.UploadImage(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	metrics.UploadedBytes.WithLabelValues(category).Add(float64(len(data)))
	logger.FromContext(ctx).Info("Image uploaded", "id", asset.ID, "category", category, "bytes", len(data))
	s.publisher.Publish(ctx, domain.EventTypeImageUploaded, domain.ActorFromContext(ctx),
		domain.EntityImage, asset.ID, asset.Filename)
	return asset, nil
}

func (s *service) UpdateMetadata(ctx context.Context, id, category, altText string) (*domain.ImageAsset, error) {
	if err := checkCategory(category, false); err != nil {
		return nil, err
	}

	asset, err := s.api.UpdateImage(ctx, id, apiclient.ImageMetadata{Category: category, AltText: strings.TrimSpace(altText)})
	if err != nil {
		return nil, fmt.Errorf("failed to update image %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeImageUpdated, domain.ActorFromContext(ctx),
		domain.EntityImage, id, asset.Filename)
	return asset, nil
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeImageDeleted, domain.ActorFromContext(ctx),
		domain.EntityImage, id, "")
	return nil
}

// Public returns the read-only public catalogue used by the image picker
func (s *service) Public(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	if err := checkCategory(category, true); err != nil {
		return nil, err
	}
	imgs, err := s.api.ListPublicImages(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list public images: %w", err)
	}
	return imgs, nil
}

// normalizeFilename strips directories and gives the name the extension of contentType.
func normalizeFilename(filename, contentType string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	ext := ""
	if mt := mimetype.Lookup(contentType); mt != nil {
		ext = mt.Extension()
	}
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		stem = "upload"
	}
	return stem + ext
}
