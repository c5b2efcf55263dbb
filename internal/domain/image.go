package domain

import "time"

// Image categories used by the image tabs
const (
	ImageCategoryRewards   = "rewards"
	ImageCategoryBanners   = "banners"
	ImageCategoryIcons     = "icons"
	ImageCategoryCosmetics = "cosmetics"
)

// ImageCategories lists categories in tab order
var ImageCategories = []string{ImageCategoryRewards, ImageCategoryBanners, ImageCategoryIcons, ImageCategoryCosmetics}

// ImageAsset is an image stored by the image management API
type ImageAsset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	AltText     string    `json:"alt_text"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// ImageUpload is the payload for a new image
type ImageUpload struct {
	Filename    string
	Category    string
	AltText     string
	ContentType string
	Data        []byte
}
