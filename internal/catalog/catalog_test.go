package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c := New([]Product{
		{ID: "a", Name: "Alpha", RawPrice: decimal.NewFromInt(10)},
		{ID: "b", Name: "Beta", RawPrice: decimal.NewFromInt(20)},
	})

	p, err := c.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "Beta", p.Name)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLoadLaterDuplicateWins(t *testing.T) {
	c := New([]Product{
		{ID: "a", Name: "Old"},
		{ID: "a", Name: "New"},
	})

	require.Equal(t, 1, c.Len())
	p, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "New", p.Name)
}

func TestListIsSortedByName(t *testing.T) {
	c := New([]Product{
		{ID: "1", Name: "Zeta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "Mid"},
	})

	out := c.List()
	require.Len(t, out, 3)
	assert.Equal(t, "Alpha", out[0].Name)
	assert.Equal(t, "Zeta", out[2].Name)
}

func TestSearch(t *testing.T) {
	c := New(Seed())

	testCases := []struct {
		name  string
		query string
		want  int
	}{
		{name: "by brand case-insensitive", query: "nimbus", want: 2},
		{name: "by category", query: "laptops", want: 2},
		{name: "by partial name", query: "pulse", want: 2},
		{name: "no match", query: "toaster", want: 0},
		{name: "blank query matches nothing", query: "   ", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, c.Search(tc.query), tc.want)
		})
	}
}

func TestSeedHasNonNegativePrices(t *testing.T) {
	for _, p := range Seed() {
		assert.False(t, p.RawPrice.IsNegative(), "product %s has negative raw price", p.ID)
		assert.NotEmpty(t, p.DisplayPrice, "product %s has no display price", p.ID)
	}
}
