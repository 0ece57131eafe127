package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationGetPage(t *testing.T) {
	page, limit := Pagination{}.GetPage()
	require.Equal(t, 1, page)
	require.Equal(t, DefaultPageLimit, limit)

	page, limit = Pagination{Page: 3, Limit: 500}.GetPage()
	require.Equal(t, 3, page)
	require.Equal(t, MaxPageLimit, limit)
}
