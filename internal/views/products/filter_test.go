package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var catalogue = []Product{
	{ID: "1", Name: "Linen Shirt", Brand: "Pehli", Description: "Summer shirt", CategoryID: "cat-1"},
	{ID: "2", Name: "Denim Jacket", Brand: "Northline", Description: "Heavy denim", CategoryID: "cat-1"},
	{ID: "3", Name: "Running Shoe", Brand: "Stride", Description: "Light mesh upper", CategoryID: "cat-2"},
	{ID: "4", Name: "Wool Scarf", Brand: "Pehli", Description: "Winter accessory", CategoryID: "cat-3"},
}

func ids(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterZeroSpecReturnsAll(t *testing.T) {
	assert.Equal(t, catalogue, Filter(catalogue, FilterSpec{}))
}

func TestFilterSearchMatchesAnyTextField(t *testing.T) {
	// Name match.
	assert.Equal(t, []string{"2"}, ids(Filter(catalogue, FilterSpec{Search: "jacket"})))
	// Brand match.
	assert.Equal(t, []string{"1", "4"}, ids(Filter(catalogue, FilterSpec{Search: "pehli"})))
	// Description match.
	assert.Equal(t, []string{"3"}, ids(Filter(catalogue, FilterSpec{Search: "mesh"})))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		ids(Filter(catalogue, FilterSpec{Search: "shirt"})),
		ids(Filter(catalogue, FilterSpec{Search: "SHIRT"})))
}

func TestFilterCategoryIsExact(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, ids(Filter(catalogue, FilterSpec{CategoryID: "cat-1"})))
	assert.Empty(t, Filter(catalogue, FilterSpec{CategoryID: "cat"}))
}

func TestFilterSearchAndCategoryCombine(t *testing.T) {
	got := Filter(catalogue, FilterSpec{Search: "pehli", CategoryID: "cat-1"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	spec := FilterSpec{Search: "pehli"}
	once := Filter(catalogue, spec)
	twice := Filter(once, spec)
	assert.Equal(t, once, twice)
}

func TestFilterTrimsSearchWhitespace(t *testing.T) {
	assert.Equal(t, []string{"2"}, ids(Filter(catalogue, FilterSpec{Search: "  jacket "})))
}
