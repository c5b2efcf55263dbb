package listing

import "github.com/osse101/PromoAdmin_Go/internal/domain"

// PageInfo describes where a page sits in the full list.
type PageInfo struct {
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// PrevPage returns the previous page number, or 1.
func (p PageInfo) PrevPage() int {
	if p.HasPrev {
		return p.Page - 1
	}
	return 1
}

// NextPage returns the next page number, or the current one on the last page.
func (p PageInfo) NextPage() int {
	if p.HasNext {
		return p.Page + 1
	}
	return p.Page
}

// PageFor computes page metadata for total items. The page is clamped to
// [1, TotalPages]; an empty list has a single empty page.
func PageFor(page, size, total int) PageInfo {
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return PageInfo{
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Offset returns the index of the first item on the page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.Size
}

// Paginate slices items for page (1-based) using PageFor.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	total := len(items)
	info := PageFor(page, size, total)

	start := info.Offset()
	end := start + info.Size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return items[start:end], info
}
