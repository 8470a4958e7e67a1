package product_controller

import (
	"strings"

	"github.com/kon1973/nexu-webshop-sub001/models"
)

// ExpandVariants generates every combination of the selected attribute
// values as a draft variant. Zero attributes yield zero variants; there
// is no implicit default variant. The draft count is the exact product
// of the attribute value-list lengths.
func ExpandVariants(attributes []models.Attribute) []models.Variant {
	if len(attributes) == 0 {
		return []models.Variant{}
	}

	combos := expand(attributes)

	variants := make([]models.Variant, 0, len(combos))
	for _, combo := range combos {
		variants = append(variants, models.Variant{
			Name:  strings.Join(combo, " / "),
			Combo: combo,
			Stock: 0,
		})
	}
	return variants
}

// expand recursively pairs each value of the first attribute with
// every combination of the remaining ones.
func expand(attributes []models.Attribute) [][]string {
	if len(attributes) == 0 {
		return [][]string{{}}
	}

	rest := expand(attributes[1:])

	combos := make([][]string, 0, len(attributes[0].Values)*len(rest))
	for _, value := range attributes[0].Values {
		for _, tail := range rest {
			combo := make([]string, 0, 1+len(tail))
			combo = append(combo, value)
			combo = append(combo, tail...)
			combos = append(combos, combo)
		}
	}
	return combos
}
