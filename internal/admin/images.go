package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
)

type imagesView struct {
	Category   string
	Categories []string
	Images     []domain.ImageAsset
	MaxBytes   int64
	Back       string
}

func imagesPath(category string) string {
	if category == "" {
		return PathImages
	}
	return PathImages + "?category=" + url.QueryEscape(category)
}

// HandleImages shows the image tabs with the upload form
func (h *Handler) HandleImages(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	p := &page{Title: "Images", Nav: "images", Live: domain.EntityImage}
	view := imagesView{
		Category:   category,
		Categories: domain.ImageCategories,
		MaxBytes:   h.maxUpload,
		Back:       currentURL(r),
	}

	imgs, err := h.images.List(r.Context(), category)
	if err != nil {
		h.renderLoadError(w, r, pageImages, p, view, err)
		return
	}
	view.Images = imgs
	p.Data = view
	h.render(w, r, http.StatusOK, pageImages, p)
}

// HandleImageUpload stores a new image from the multipart form
func (h *Handler) HandleImageUpload(w http.ResponseWriter, r *http.Request) {
	form, err := handler.ReadImageUpload(w, r, h.maxUpload)
	if err != nil {
		h.fail(w, r, PathImages, "upload image", err)
		return
	}
	category := strings.ToLower(form.Category)

	if _, err := h.images.Upload(r.Context(), category, form.AltText, form.Filename, form.Data); err != nil {
		h.fail(w, r, imagesPath(category), "upload image", err)
		return
	}
	h.redirect(w, r, imagesPath(category), FlashSuccess, MsgImageUploaded)
}

// HandleImageUpdate edits an image's category and alt text
func (h *Handler) HandleImageUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathImages, "update image", err)
		return
	}
	back := backTo(r, PathImages)
	category := strings.ToLower(strings.TrimSpace(r.PostFormValue(handler.FormFieldCategory)))

	_, err := h.images.UpdateMetadata(r.Context(), chi.URLParam(r, FieldID), category, r.PostFormValue(handler.FormFieldAltText))
	if err != nil {
		h.fail(w, r, back, "update image", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgImageSaved)
}

// HandleImageDelete deletes an image after confirmation
func (h *Handler) HandleImageDelete(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathImages, "delete image", err)
		return
	}
	back := backTo(r, PathImages)

	if err := h.images.Delete(r.Context(), chi.URLParam(r, FieldID), isConfirmed(r)); err != nil {
		h.fail(w, r, back, "delete image", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgImageDeleted)
}
