package services

import (
	"testing"

	"storefront/models"
)

func sel(optionID, value string, mod int64) models.OptionSelection {
	return models.OptionSelection{OptionID: optionID, Value: value, Label: value, PriceModifier: mod}
}

func TestSelectionsKeyOrderInvariant(t *testing.T) {
	a := []models.OptionSelection{sel("size", "large", 5), sel("spice", "hot", 2)}
	b := []models.OptionSelection{sel("spice", "hot", 2), sel("size", "large", 5)}
	if SelectionsKey(a) != SelectionsKey(b) {
		t.Error("SelectionsKey should not depend on selection entry order")
	}

	c := []models.OptionSelection{sel("size", "regular", 0), sel("spice", "hot", 2)}
	if SelectionsKey(a) == SelectionsKey(c) {
		t.Error("SelectionsKey should differ for different chosen values")
	}
}

func TestNormalizeSelectionsCopies(t *testing.T) {
	orig := []models.OptionSelection{sel("spice", "hot", 2), sel("size", "large", 5)}
	norm := NormalizeSelections(orig)
	if norm[0].OptionID != "size" {
		t.Errorf("NormalizeSelections()[0].OptionID = %q, want %q", norm[0].OptionID, "size")
	}
	if orig[0].OptionID != "spice" {
		t.Error("NormalizeSelections must not reorder the input slice")
	}
}

func TestResolveMerge(t *testing.T) {
	items := []models.LineItem{
		{ID: "a", ProductID: 1, Notes: "", Selections: []models.OptionSelection{sel("size", "large", 5)}},
		{ID: "b", ProductID: 1, Notes: "no onions", Selections: []models.OptionSelection{sel("size", "large", 5)}},
		{ID: "c", ProductID: 2, Notes: ""},
	}

	tests := []struct {
		name     string
		proposed models.ProposedItem
		want     int
	}{
		{
			"same product, selections, notes",
			models.ProposedItem{ProductID: 1, Selections: []models.OptionSelection{sel("size", "large", 5)}},
			0,
		},
		{
			"notes differ",
			models.ProposedItem{ProductID: 1, Notes: "extra sauce", Selections: []models.OptionSelection{sel("size", "large", 5)}},
			-1,
		},
		{
			"matching notes",
			models.ProposedItem{ProductID: 1, Notes: "no onions", Selections: []models.OptionSelection{sel("size", "large", 5)}},
			1,
		},
		{
			"selections differ",
			models.ProposedItem{ProductID: 1, Selections: []models.OptionSelection{sel("size", "regular", 0)}},
			-1,
		},
		{
			"no selections at all",
			models.ProposedItem{ProductID: 2},
			2,
		},
		{
			"unknown product",
			models.ProposedItem{ProductID: 99},
			-1,
		},
	}
	for _, tt := range tests {
		got := ResolveMerge(items, tt.proposed)
		if got != tt.want {
			t.Errorf("%s: ResolveMerge() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
