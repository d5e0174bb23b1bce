package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		pages int
	}{
		{name: "exact multiple", total: 20, limit: 10, pages: 2},
		{name: "partial last page", total: 25, limit: 10, pages: 3},
		{name: "empty listing", total: 0, limit: 10, pages: 0},
		{name: "single short page", total: 3, limit: 10, pages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, 1, tt.limit)
			assert.Equal(t, tt.pages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}
