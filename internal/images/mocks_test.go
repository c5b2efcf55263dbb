package images

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MockAPI implements API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListImages(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImageAsset), args.Error(1)
}

func (m *MockAPI) UploadImage(ctx context.Context, upload domain.ImageUpload) (*domain.ImageAsset, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageAsset), args.Error(1)
}

func (m *MockAPI) UpdateImage(ctx context.Context, id string, meta apiclient.ImageMetadata) (*domain.ImageAsset, error) {
	args := m.Called(ctx, id, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageAsset), args.Error(1)
}

func (m *MockAPI) DeleteImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ListPublicImages(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImageAsset), args.Error(1)
}
