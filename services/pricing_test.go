package services

import (
	"testing"

	"storefront/models"
)

var sizeAndSpice = []models.OptionGroup{
	{
		ID:    "size",
		Label: "Size",
		Values: []models.OptionValue{
			{Value: "regular", Label: "Regular", PriceModifier: 0},
			{Value: "large", Label: "Large", PriceModifier: 5},
		},
	},
	{
		ID:    "spice",
		Label: "Spice",
		Values: []models.OptionValue{
			{Value: "mild", Label: "Mild", PriceModifier: 0},
			{Value: "hot", Label: "Hot", PriceModifier: 2},
		},
	},
}

func TestOptionsPrice(t *testing.T) {
	tests := []struct {
		name     string
		selected map[string]string
		want     int64
	}{
		{"no selections", nil, 0},
		{"free values", map[string]string{"size": "regular", "spice": "mild"}, 0},
		{"one paid value", map[string]string{"size": "large"}, 5},
		{"two paid values", map[string]string{"size": "large", "spice": "hot"}, 7},
		{"unknown value counts zero", map[string]string{"size": "jumbo"}, 0},
		{"unknown group counts zero", map[string]string{"crust": "thin"}, 0},
	}
	for _, tt := range tests {
		got := OptionsPrice(sizeAndSpice, tt.selected)
		if got != tt.want {
			t.Errorf("%s: OptionsPrice() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestUnitAndTotalPrice(t *testing.T) {
	unit := UnitPrice(25, sizeAndSpice, map[string]string{"size": "large"})
	if unit != 30 {
		t.Errorf("UnitPrice(25, large) = %d, want 30", unit)
	}
	if got := TotalPrice(unit, 2); got != 60 {
		t.Errorf("TotalPrice(30, 2) = %d, want 60", got)
	}
}

func TestDefaultSelections(t *testing.T) {
	defaults := DefaultSelections(sizeAndSpice)
	if defaults["size"] != "regular" || defaults["spice"] != "mild" {
		t.Errorf("DefaultSelections() = %v, want first value of each group", defaults)
	}
	// A default-seeded item is priceable before the user touches anything.
	if got := UnitPrice(25, sizeAndSpice, defaults); got != 25 {
		t.Errorf("UnitPrice with defaults = %d, want 25", got)
	}

	empty := DefaultSelections([]models.OptionGroup{{ID: "empty"}})
	if len(empty) != 0 {
		t.Errorf("DefaultSelections(empty group) = %v, want no entries", empty)
	}
}

func TestBuildSelections(t *testing.T) {
	sels := BuildSelections(sizeAndSpice, map[string]string{"size": "large", "spice": "nope"})
	if len(sels) != 1 {
		t.Fatalf("BuildSelections() returned %d selections, want 1", len(sels))
	}
	s := sels[0]
	if s.OptionID != "size" || s.Value != "large" || s.Label != "Large" || s.PriceModifier != 5 {
		t.Errorf("BuildSelections() = %+v, want captured size/large snapshot", s)
	}
}
