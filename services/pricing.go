package services

import "storefront/models"

// OptionsPrice sums the price modifier of the selected value in each option
// group. Groups without a selection and selections pointing at unknown
// values contribute 0.
func OptionsPrice(groups []models.OptionGroup, selected map[string]string) int64 {
	var sum int64
	for _, g := range groups {
		chosen, ok := selected[g.ID]
		if !ok {
			continue
		}
		for _, v := range g.Values {
			if v.Value == chosen {
				sum += v.PriceModifier
				break
			}
		}
	}
	return sum
}

// UnitPrice is the price of one unit of a configured item: base + options.
func UnitPrice(basePrice int64, groups []models.OptionGroup, selected map[string]string) int64 {
	return basePrice + OptionsPrice(groups, selected)
}

// TotalPrice is the line total for a quantity of an already-priced unit.
func TotalPrice(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// DefaultSelections seeds every option group with its first value, so a
// customization view always has a displayable price before the user picks
// anything. Empty groups are skipped.
func DefaultSelections(groups []models.OptionGroup) map[string]string {
	defaults := make(map[string]string, len(groups))
	for _, g := range groups {
		if len(g.Values) > 0 {
			defaults[g.ID] = g.Values[0].Value
		}
	}
	return defaults
}

// BuildSelections turns a selection map into the ordered selection records
// attached to a line item, capturing label and price modifier at add-time.
// Unknown values are dropped rather than failing.
func BuildSelections(groups []models.OptionGroup, selected map[string]string) []models.OptionSelection {
	var out []models.OptionSelection
	for _, g := range groups {
		chosen, ok := selected[g.ID]
		if !ok {
			continue
		}
		for _, v := range g.Values {
			if v.Value == chosen {
				out = append(out, models.OptionSelection{
					OptionID:      g.ID,
					Value:         v.Value,
					Label:         v.Label,
					PriceModifier: v.PriceModifier,
				})
				break
			}
		}
	}
	return out
}
