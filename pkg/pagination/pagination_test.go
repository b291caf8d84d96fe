package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/pkg/pagination"
)

func finalized(t *testing.T) pagination.Config {
	t.Helper()
	var cfg pagination.Config
	require.NoError(t, cfg.Finalize(nil))
	return cfg
}

func TestFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := finalized(t)
		assert.Equal(t, 20, cfg.DefaultPageSize)
		assert.Equal(t, 100, cfg.MaxPageSize)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_PAGE_SIZE", "5")
		cfg := pagination.Config{}
		require.NoError(t, cfg.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}))
		assert.Equal(t, 5, cfg.DefaultPageSize)
	})

	t.Run("default exceeds max", func(t *testing.T) {
		cfg := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
		assert.Error(t, cfg.Finalize(nil))
	})
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := finalized(t)

	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"empty", "", 1, 20},
		{"explicit", "page=3&page_size=5", 3, 5},
		{"clamped", "page=0&page_size=1000", 1, 100},
		{"garbage", "page=x&page_size=y", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			req := pagination.PageRequestFromQuery(values, cfg)
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.pageSize, req.PageSize)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		req        pagination.PageRequest
		want       []int
		totalPages int
	}{
		{"first page", pagination.PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3},
		{"last partial page", pagination.PageRequest{Page: 3, PageSize: 2}, []int{5}, 3},
		{"past the end", pagination.PageRequest{Page: 9, PageSize: 2}, []int{}, 3},
		{"single page", pagination.PageRequest{Page: 1, PageSize: 10}, []int{1, 2, 3, 4, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Paginate(items, tt.req)
			assert.Equal(t, tt.want, got.Data)
			assert.Equal(t, 5, got.Total)
			assert.Equal(t, tt.totalPages, got.TotalPages)
		})
	}

	t.Run("result does not alias input", func(t *testing.T) {
		got := pagination.Paginate(items, pagination.PageRequest{Page: 1, PageSize: 2})
		got.Data[0] = 99
		assert.Equal(t, 1, items[0])
	})
}
