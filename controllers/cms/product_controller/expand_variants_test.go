package product_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kon1973/nexu-webshop-sub001/models"
)

func TestExpandVariantsCartesianCount(t *testing.T) {
	attributes := []models.Attribute{
		{Name: "Szín", Values: []string{"Fekete", "Fehér"}},
		{Name: "Méret", Values: []string{"S", "M", "L"}},
	}

	variants := ExpandVariants(attributes)
	require.Len(t, variants, 6)

	seen := make(map[string]bool)
	for _, v := range variants {
		require.Len(t, v.Combo, 2)
		assert.False(t, seen[v.Name], "duplicate combo %q", v.Name)
		seen[v.Name] = true
		assert.Zero(t, v.Stock)
		assert.Nil(t, v.Price)
	}
	assert.True(t, seen["Fekete / S"])
	assert.True(t, seen["Fehér / L"])
}

func TestExpandVariantsZeroAttributes(t *testing.T) {
	assert.Empty(t, ExpandVariants(nil))
	assert.Empty(t, ExpandVariants([]models.Attribute{}))
}

func TestExpandVariantsSingleAttribute(t *testing.T) {
	variants := ExpandVariants([]models.Attribute{
		{Name: "Tárhely", Values: []string{"128 GB", "256 GB"}},
	})

	require.Len(t, variants, 2)
	assert.Equal(t, []string{"128 GB"}, variants[0].Combo)
	assert.Equal(t, "128 GB", variants[0].Name)
}

func TestExpandVariantsEmptyValueListYieldsNothing(t *testing.T) {
	variants := ExpandVariants([]models.Attribute{
		{Name: "Szín", Values: []string{"Fekete"}},
		{Name: "Méret", Values: nil},
	})

	assert.Empty(t, variants)
}

func TestExpandVariantsThreeAttributes(t *testing.T) {
	variants := ExpandVariants([]models.Attribute{
		{Name: "Szín", Values: []string{"Fekete", "Fehér"}},
		{Name: "Tárhely", Values: []string{"128 GB", "256 GB"}},
		{Name: "Garancia", Values: []string{"1 év", "2 év", "3 év"}},
	})

	assert.Len(t, variants, 12)
	assert.Equal(t, "Fekete / 128 GB / 1 év", variants[0].Name)
}
