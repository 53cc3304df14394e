package services

import (
	"encoding/json"
	"sort"

	"storefront/models"
)

// NormalizeSelections returns a copy sorted by optionId+value, so the order
// the user clicked options in never affects line-item identity.
func NormalizeSelections(selections []models.OptionSelection) []models.OptionSelection {
	out := make([]models.OptionSelection, len(selections))
	copy(out, selections)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OptionID+out[i].Value < out[j].OptionID+out[j].Value
	})
	return out
}

// SelectionsKey serializes the normalized selection set into a comparable
// string key.
func SelectionsKey(selections []models.OptionSelection) string {
	b, err := json.Marshal(NormalizeSelections(selections))
	if err != nil {
		return ""
	}
	return string(b)
}

// ResolveMerge finds an existing line item equivalent to the proposed one:
// same product, same notes, same normalized selections. Returns its index,
// or -1 when the proposal is a genuinely new line. The cart never holds two
// equivalent lines, so the first match is the only match.
func ResolveMerge(items []models.LineItem, proposed models.ProposedItem) int {
	key := SelectionsKey(proposed.Selections)
	for i, it := range items {
		if it.ProductID == proposed.ProductID &&
			it.Notes == proposed.Notes &&
			SelectionsKey(it.Selections) == key {
			return i
		}
	}
	return -1
}
