package postgres

import (
	"testing"

	"luxe/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort repository.SortKey
		want string
	}{
		// Price sorts use the list price, not the sale price.
		{"price ascending", repository.SortPriceAsc, "price ASC"},
		{"price descending", repository.SortPriceDesc, "price DESC"},
		{"rating", repository.SortRating, "avg_rating DESC, created_at DESC"},
		{"popular", repository.SortPopular, "review_count DESC, created_at DESC"},
		{"newest", repository.SortNewest, "created_at DESC"},
		{"unknown falls back to newest", repository.SortKey("bogus"), "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort))
		})
	}
}
