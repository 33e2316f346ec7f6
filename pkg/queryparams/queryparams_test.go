package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsToSafeRanges(t *testing.T) {
	cases := []struct {
		name            string
		in              ListParams
		wantPage        int
		wantPerPage     int
	}{
		{"varsayilanlar", ListParams{}, 1, DefaultPerPage},
		{"negatif sayfa", ListParams{Page: -3, PerPage: 10}, 1, 10},
		{"limit tavani", ListParams{Page: 2, PerPage: 1000}, 2, MaxPerPage},
		{"limit tabani", ListParams{Page: 2, PerPage: 0}, 2, DefaultPerPage},
		{"gecerli degerler", ListParams{Page: 5, PerPage: 50}, 5, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Validate()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantPerPage, tc.in.PerPage)
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 10}
	assert.Equal(t, 20, p.CalculateOffset())

	p = ListParams{Page: 1, PerPage: 25}
	assert.Equal(t, 0, p.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 3, CalculateTotalPages(25, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestDefaultListParams(t *testing.T) {
	p := DefaultListParams("created_at")
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}
