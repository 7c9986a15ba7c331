package domain

import "math"

// Paging describes the position of a page within a search result.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// NewPaging computes paging metadata for total matches split into pages of
// size. TotalPage is ceil(total/size) and is zero when nothing matched.
func NewPaging(page, size int, total int64) Paging {
	totalPage := 0
	if size > 0 && total > 0 {
		pages := total / int64(size)
		if total%int64(size) != 0 {
			pages++
		}
		totalPage = int(pages)
	}
	return Paging{
		CurrentPage: page,
		Size:        size,
		TotalPage:   totalPage,
	}
}

// Offset returns the number of rows skipped before page starts. ok is false
// when the offset does not fit in an int64; such a page lies past any
// possible result.
func Offset(page, size int) (offset int64, ok bool) {
	if page < 1 || size < 1 {
		return 0, true
	}
	skipped := int64(page - 1)
	if skipped > math.MaxInt64/int64(size) {
		return 0, false
	}
	return skipped * int64(size), true
}
