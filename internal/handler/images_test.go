package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// pngHeader is enough of a PNG for content sniffing
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newUploadRequest(t *testing.T, fields map[string]string, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(FormFieldFile, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImagesHandler_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockImagesService)
		svc.On("Upload", mock.Anything, domain.ImageCategoryBanners, "Hero", "hero.png", pngHeader).
			Return(&domain.ImageAsset{ID: "img-1", Filename: "hero.png", Category: domain.ImageCategoryBanners}, nil)

		req := newUploadRequest(t, map[string]string{FormFieldCategory: "banners", FormFieldAltText: "Hero"}, "hero.png", pngHeader)
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 1024).HandleUpload(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var asset domain.ImageAsset
		decodeBody(t, w, &asset)
		assert.Equal(t, "img-1", asset.ID)
	})

	t.Run("file over limit", func(t *testing.T) {
		svc := new(MockImagesService)
		req := newUploadRequest(t, map[string]string{FormFieldCategory: "icons"}, "big.png", bytes.Repeat([]byte{1}, 2048))
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 1024).HandleUpload(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing file", func(t *testing.T) {
		svc := new(MockImagesService)
		req := newUploadRequest(t, map[string]string{FormFieldCategory: "icons"}, "", nil)
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 1024).HandleUpload(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, ErrMsgFileRequired, resp.Fields[FormFieldFile])
	})

	t.Run("unsupported type from service", func(t *testing.T) {
		svc := new(MockImagesService)
		svc.On("Upload", mock.Anything, "icons", "", "notes.txt", []byte("hello")).
			Return(nil, domain.ErrUnsupportedContentType)

		req := newUploadRequest(t, map[string]string{FormFieldCategory: "icons"}, "notes.txt", []byte("hello"))
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 1024).HandleUpload(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestImagesHandler_Update(t *testing.T) {
	t.Run("rejects unknown category before calling service", func(t *testing.T) {
		svc := new(MockImagesService)
		req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/admin/images/img-1",
			ImageMetadataRequest{Category: "wallpapers"}), ParamID, "img-1")
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 0).HandleUpdate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid image category")
	})

	t.Run("lowercases category", func(t *testing.T) {
		svc := new(MockImagesService)
		svc.On("UpdateMetadata", mock.Anything, "img-1", "icons", "Shield").
			Return(&domain.ImageAsset{ID: "img-1", Category: "icons", AltText: "Shield"}, nil)

		req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/v1/admin/images/img-1",
			ImageMetadataRequest{Category: "Icons", AltText: "Shield"}), ParamID, "img-1")
		w := httptest.NewRecorder()
		NewImagesHandler(svc, 0).HandleUpdate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestImagesHandler_ListAndPublic(t *testing.T) {
	svc := new(MockImagesService)
	svc.On("List", mock.Anything, "rewards").Return([]domain.ImageAsset{{ID: "a"}}, nil)
	svc.On("Public", mock.Anything, "").Return([]domain.ImageAsset{{ID: "p1"}, {ID: "p2"}}, nil)
	h := NewImagesHandler(svc, 0)

	w := httptest.NewRecorder()
	h.HandleList(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/images?category=rewards", nil))
	var managed []domain.ImageAsset
	decodeBody(t, w, &managed)
	assert.Len(t, managed, 1)

	w = httptest.NewRecorder()
	h.HandlePublic(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/images/public", nil))
	var public []domain.ImageAsset
	decodeBody(t, w, &public)
	assert.Len(t, public, 2)
}

func TestImagesHandler_Delete(t *testing.T) {
	svc := new(MockImagesService)
	svc.On("Delete", mock.Anything, "img-1", true).Return(nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/images/img-1?confirm=yes", nil), ParamID, "img-1")
	w := httptest.NewRecorder()
	NewImagesHandler(svc, 0).HandleDelete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgImageDeleted)
}
