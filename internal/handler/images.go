package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/images"
)

// ImageUploadForm is a parsed multipart image upload
type ImageUploadForm struct {
	Category string
	AltText  string
	Filename string
	Data     []byte
}

// ReadImageUpload parses a multipart upload, reading at most maxBytes+1 bytes
// of the file so oversize files fail with domain.ErrFileTooLarge.
func ReadImageUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*ImageUploadForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverheadBytes)
	if err := r.ParseMultipartForm(maxBytes + multipartOverheadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request exceeds %d bytes", domain.ErrFileTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	file, header, err := r.FormFile(FormFieldFile)
	if err != nil {
		v := domain.NewValidationError()
		v.Add(FormFieldFile, ErrMsgFileRequired)
		return nil, v
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUploadFailed, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrFileTooLarge, maxBytes)
	}

	return &ImageUploadForm{
		Category: strings.TrimSpace(r.FormValue(FormFieldCategory)),
		AltText:  r.FormValue(FormFieldAltText),
		Filename: header.Filename,
		Data:     data,
	}, nil
}

// ImagesHandler serves image management endpoints
type ImagesHandler struct {
	svc      images.Service
	maxBytes int64
}

// NewImagesHandler creates a new images handler. maxBytes <= 0 uses the images default.
func NewImagesHandler(svc images.Service, maxBytes int64) *ImagesHandler {
	if maxBytes <= 0 {
		maxBytes = images.DefaultMaxUploadBytes
	}
	return &ImagesHandler{svc: svc, maxBytes: maxBytes}
}

// HandleList returns managed images, optionally for one category
// @Summary List images
// @Tags images
// @Produce json
// @Param category query string false "Image category"
// @Success 200 {array} domain.ImageAsset
// @Router /api/v1/admin/images [get]
func (h *ImagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	imgs, err := h.svc.List(r.Context(), GetOptionalQueryParam(r, ParamCategory, ""))
	if err != nil {
		respondServiceError(w, r, "List images", err)
		return
	}
	respondJSON(w, http.StatusOK, imgs)
}

// HandlePublic returns the public image catalogue used by the image picker
// @Summary List public images
// @Tags images
// @Produce json
// @Param category query string false "Image category"
// @Success 200 {array} domain.ImageAsset
// @Router /api/v1/admin/images/public [get]
func (h *ImagesHandler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	imgs, err := h.svc.Public(r.Context(), GetOptionalQueryParam(r, ParamCategory, ""))
	if err != nil {
		respondServiceError(w, r, "List public images", err)
		return
	}
	respondJSON(w, http.StatusOK, imgs)
}

// HandleUpload uploads an image from a multipart form with file, category and alt_text fields
// @Summary Upload image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param category formData string true "Image category"
// @Param alt_text formData string false "Alt text"
// @Success 201 {object} domain.ImageAsset
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /api/v1/admin/images [post]
func (h *ImagesHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	form, err := ReadImageUpload(w, r, h.maxBytes)
	if err != nil {
		respondServiceError(w, r, "Read image upload", err)
		return
	}

	asset, err := h.svc.Upload(r.Context(), form.Category, form.AltText, form.Filename, form.Data)
	if err != nil {
		respondServiceError(w, r, "Upload image", err)
		return
	}
	respondJSON(w, http.StatusCreated, asset)
}

// HandleUpdate edits an image's category and alt text
// @Summary Update image metadata
// @Tags images
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Param request body ImageMetadataRequest true "Metadata"
// @Success 200 {object} domain.ImageAsset
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/images/{id} [put]
func (h *ImagesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	var req ImageMetadataRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update image"); err != nil {
		return
	}

	asset, err := h.svc.UpdateMetadata(r.Context(), id, strings.ToLower(req.Category), req.AltText)
	if err != nil {
		respondServiceError(w, r, "Update image", err)
		return
	}
	respondJSON(w, http.StatusOK, asset)
}

// HandleDelete deletes an image. Requires confirm=yes.
// @Summary Delete image
// @Tags images
// @Produce json
// @Param id path string true "Image ID"
// @Param confirm query string true "Must be yes"
// @Success 200 {object} SuccessResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/images/{id} [delete]
func (h *ImagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, IsConfirmed(r)); err != nil {
		respondServiceError(w, r, "Delete image", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImageDeleted})
}
