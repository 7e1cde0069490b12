package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
)

func existing() *products.Product {
	return &products.Product{
		ID:          "p-1",
		Name:        "Linen Shirt",
		Brand:       "Pehli",
		Description: "Summer shirt",
		Gender:      "men",
		CategoryID:  "cat-1",
		Variations: []products.Variation{{
			ID: "v-1", SKU: "LS-1", Sizes: []string{"M"}, Colors: []string{"white"},
			Price: 39.9, StockQuantity: 5,
		}},
	}
}

func TestOpenNewProduct(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)

	assert.True(t, s.IsOpen())
	assert.Empty(t, s.ProductID())
	assert.Empty(t, s.Variations())
}

func TestOpenExistingSeedsDrafts(t *testing.T) {
	s := NewEditSession()
	s.Open(existing())

	assert.Equal(t, "p-1", s.ProductID())
	assert.Equal(t, "Linen Shirt", s.Form().Name)

	drafts := s.Variations()
	require.Len(t, drafts, 1)
	assert.Equal(t, "v-1", drafts[0].RemoteID)
	assert.NotEmpty(t, drafts[0].LocalID)
	assert.Equal(t, []string{"M"}, drafts[0].Sizes)
}

func TestOpenDiscardsPreviousDrafts(t *testing.T) {
	s := NewEditSession()
	s.Open(existing())
	s.AddVariation()

	s.Open(nil)
	assert.Empty(t, s.ProductID())
	assert.Empty(t, s.Variations())
}

func TestCloseDiscardsEverything(t *testing.T) {
	s := NewEditSession()
	s.Open(existing())
	s.Close()

	assert.False(t, s.IsOpen())
	assert.Empty(t, s.ProductID())
	assert.Empty(t, s.Variations())
	assert.Zero(t, s.Form())
}

func TestAddAndRemoveVariation(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)

	id1 := s.AddVariation()
	id2 := s.AddVariation()
	assert.NotEqual(t, id1, id2)
	require.Len(t, s.Variations(), 2)

	require.NoError(t, s.RemoveVariation(0))
	drafts := s.Variations()
	require.Len(t, drafts, 1)
	assert.Equal(t, id2, drafts[0].LocalID)

	assert.ErrorIs(t, s.RemoveVariation(5), ErrNoSuchVariation)
	assert.ErrorIs(t, s.RemoveVariation(-1), ErrNoSuchVariation)
}

func TestUpdateField(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)
	s.AddVariation()

	require.NoError(t, s.UpdateField(0, "sku", "NEW-1"))
	require.NoError(t, s.UpdateField(0, "price", 12.5))
	require.NoError(t, s.UpdateField(0, "discountPercent", 15))
	require.NoError(t, s.UpdateField(0, "stockQuantity", 7))

	d := s.Variations()[0]
	assert.Equal(t, "NEW-1", d.SKU)
	assert.Equal(t, 12.5, d.Price)
	assert.Equal(t, 15, d.DiscountPercent)
	assert.Equal(t, 7, d.StockQuantity)

	assert.Error(t, s.UpdateField(0, "price", "free"))
	assert.Error(t, s.UpdateField(0, "nope", 1))
	assert.ErrorIs(t, s.UpdateField(3, "sku", "x"), ErrNoSuchVariation)
}

func TestUpdateMultiField(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)
	s.AddVariation()

	require.NoError(t, s.UpdateMultiField(0, FieldSizes, "M", true))
	require.NoError(t, s.UpdateMultiField(0, FieldSizes, "L", true))
	// Adding twice does not duplicate.
	require.NoError(t, s.UpdateMultiField(0, FieldSizes, "M", true))
	assert.Equal(t, []string{"M", "L"}, s.Variations()[0].Sizes)

	require.NoError(t, s.UpdateMultiField(0, FieldSizes, "M", false))
	assert.Equal(t, []string{"L"}, s.Variations()[0].Sizes)

	require.NoError(t, s.UpdateMultiField(0, FieldColors, "red", true))
	assert.Equal(t, []string{"red"}, s.Variations()[0].Colors)

	assert.Error(t, s.UpdateMultiField(0, "flavours", "mint", true))
}

func TestPayloadOmitsLocalIDs(t *testing.T) {
	s := NewEditSession()
	s.Open(existing())
	s.AddVariation()
	require.NoError(t, s.UpdateField(1, "sku", "NEW-1"))

	p := s.Payload()
	assert.Equal(t, "Linen Shirt", p.Name)
	require.Len(t, p.Variations, 2)
	// The seeded draft keeps its server id; the new one submits none.
	assert.Equal(t, "v-1", p.Variations[0].ID)
	assert.Empty(t, p.Variations[1].ID)
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)
	s.AddVariation()
	require.NoError(t, s.UpdateField(0, "price", 0.0))
	require.NoError(t, s.UpdateField(0, "stockQuantity", -1))
	require.NoError(t, s.UpdateField(0, "discountPercent", 150))

	err := s.Validate()
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)

	// Everything wrong is reported at once, not first-failure.
	for _, key := range []string{
		"name", "description", "gender", "categoryId",
		"variations[0].sizes", "variations[0].colors",
		"variations[0].price", "variations[0].stockQuantity",
		"variations[0].discountPercent",
	} {
		assert.Contains(t, ae.Fields, key)
	}
}

func TestValidateRequiresAVariation(t *testing.T) {
	s := NewEditSession()
	s.Open(nil)
	s.SetForm(Form{Name: "n", Description: "d", Gender: "men", CategoryID: "c"})

	err := s.Validate()
	require.Error(t, err)
	ae, _ := apperr.As(err)
	assert.Contains(t, ae.Fields, "variations")
}

func TestValidatePassesCompleteDraft(t *testing.T) {
	s := NewEditSession()
	s.Open(existing())
	assert.NoError(t, s.Validate())
}
