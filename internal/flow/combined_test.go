package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-ordering-service/internal/cart"
	"menu-ordering-service/internal/catalog"
)

var pizzaSizes = []string{"Personal", "Mediana", "Familiar"}

func hawaiana() *catalog.Product {
	return &catalog.Product{
		ID:   "pz-hawaiana",
		Name: "Pizza Hawaiana",
		SizePrices: map[string]float64{
			"Personal": 15000,
			"Mediana":  20000,
			"Familiar": 30000,
		},
		Sizes: pizzaSizes,
	}
}

func pollo() *catalog.Product {
	return &catalog.Product{
		ID:   "pz-pollo",
		Name: "Pizza Pollo",
		SizePrices: map[string]float64{
			"Personal": 17000,
			"Mediana":  24000,
			"Familiar": 34000,
		},
		Sizes: pizzaSizes,
	}
}

func TestCombined_ExcludesSmallestTier(t *testing.T) {
	f := NewCombined(pizzaSizes, nil)

	assert.Equal(t, []string{"Mediana", "Familiar"}, f.AllowedSizes())
	assert.Equal(t, "Mediana", f.Size(), "default is the first allowed size")

	err := f.SelectSize("Personal")
	assert.ErrorIs(t, err, ErrUnknownSize, "the smallest tier is not offered for combined items")

	require.NoError(t, f.SelectSize("Familiar"))
	assert.Equal(t, "Familiar", f.Size())
}

func TestCombined_SeedPreselectsFlavor(t *testing.T) {
	seed := hawaiana()
	f := NewCombined(pizzaSizes, seed)

	flavors := f.Flavors()
	require.Len(t, flavors, 1)
	assert.Equal(t, seed.ID, flavors[0].ID)
}

func TestCombined_ToggleFlavor(t *testing.T) {
	f := NewCombined(pizzaSizes, nil)

	assert.True(t, f.ToggleFlavor(hawaiana()))
	assert.True(t, f.ToggleFlavor(pollo()))
	assert.Len(t, f.Flavors(), 2)

	// A third flavor is rejected with no state change.
	third := &catalog.Product{ID: "pz-margarita", Name: "Pizza Margarita"}
	assert.False(t, f.ToggleFlavor(third))
	assert.Len(t, f.Flavors(), 2)

	// Toggling a selected flavor deselects it.
	assert.True(t, f.ToggleFlavor(hawaiana()))
	flavors := f.Flavors()
	require.Len(t, flavors, 1)
	assert.Equal(t, "pz-pollo", flavors[0].ID)
}

func TestCombined_CanSubmitNeedsTwoFlavors(t *testing.T) {
	f := NewCombined(pizzaSizes, hawaiana())
	assert.ErrorIs(t, f.CanSubmit(), ErrFlavorsIncomplete)

	_, err := f.UnitPrice()
	assert.ErrorIs(t, err, ErrFlavorsIncomplete)

	f.ToggleFlavor(pollo())
	assert.NoError(t, f.CanSubmit())

	price, err := f.UnitPrice()
	require.NoError(t, err)
	assert.Equal(t, 22000.0, price)
}

func TestCombined_SubmitDelegatesToEngine(t *testing.T) {
	engine := cart.NewEngine()
	f := NewCombined(pizzaSizes, hawaiana())
	f.ToggleFlavor(pollo())
	f.SetNote("mitad y mitad bien asada")

	id, err := f.Submit(engine)
	require.NoError(t, err)

	item, ok := engine.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Combinada (Mediana): Hawaiana / Pollo", item.DisplayName)
	assert.Equal(t, 22000.0, item.UnitPrice)
	assert.Equal(t, "mitad y mitad bien asada", item.Note)

	_, err = f.Submit(engine)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCombined_SubmitMergesWithMirroredSelection(t *testing.T) {
	engine := cart.NewEngine()

	ab := NewCombined(pizzaSizes, hawaiana())
	ab.ToggleFlavor(pollo())
	first, err := ab.Submit(engine)
	require.NoError(t, err)

	ba := NewCombined(pizzaSizes, pollo())
	ba.ToggleFlavor(hawaiana())
	second, err := ba.Submit(engine)
	require.NoError(t, err)

	assert.Equal(t, first, second, "flavor order must not fork the cart line")
	require.Len(t, engine.Items(), 1)
	assert.Equal(t, 2, engine.Items()[0].Quantity)
}

func TestCombined_CancelCarriesSeed(t *testing.T) {
	seed := hawaiana()
	f := NewCombined(pizzaSizes, seed)

	out := f.Cancel()
	assert.Equal(t, ReasonCancel, out.Reason)
	require.NotNil(t, out.Seed)
	assert.Equal(t, seed.ID, out.Seed.ID, "the upgrade seed rides back so the simple flow can reopen pre-seeded")

	_, err := f.Submit(cart.NewEngine())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCombined_CancelWithoutSeed(t *testing.T) {
	f := NewCombined(pizzaSizes, nil)
	out := f.Cancel()
	assert.Equal(t, ReasonCancel, out.Reason)
	assert.Nil(t, out.Seed)
}
