package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	tests := []struct {
		name          string
		page, size    int
		total         int64
		wantTotalPage int
	}{
		{name: "exact multiple", page: 1, size: 5, total: 15, wantTotalPage: 3},
		{name: "partial last page", page: 2, size: 5, total: 16, wantTotalPage: 4},
		{name: "no matches", page: 1, size: 5, total: 0, wantTotalPage: 0},
		{name: "fewer than one page", page: 1, size: 10, total: 3, wantTotalPage: 1},
		{name: "page beyond last keeps current page", page: 4, size: 5, total: 15, wantTotalPage: 3},
		{name: "zero size guarded", page: 1, size: 0, total: 7, wantTotalPage: 0},
		{name: "huge size is one page", page: 1, size: math.MaxInt64, total: 7, wantTotalPage: 1},
		{name: "huge size without matches", page: 1, size: math.MaxInt64, total: 0, wantTotalPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaging(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.size, p.Size)
			assert.Equal(t, tt.wantTotalPage, p.TotalPage)
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       int64
		wantOK     bool
	}{
		{name: "first page", page: 1, size: 5, want: 0, wantOK: true},
		{name: "second page", page: 2, size: 5, want: 5, wantOK: true},
		{name: "fourth page", page: 4, size: 5, want: 15, wantOK: true},
		{name: "non-positive page", page: 0, size: 5, want: 0, wantOK: true},
		{name: "huge size on first page", page: 1, size: math.MaxInt64, want: 0, wantOK: true},
		{name: "largest representable offset", page: 2, size: math.MaxInt64, want: math.MaxInt64, wantOK: true},
		{name: "huge page overflows", page: 1 << 62, size: 4, want: 0, wantOK: false},
		{name: "both huge overflow", page: math.MaxInt64, size: math.MaxInt64, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Offset(tt.page, tt.size)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}
