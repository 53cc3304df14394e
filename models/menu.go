package models

// OptionValue is one choosable value inside an option group, e.g. size "large".
type OptionValue struct {
	Value         string `json:"value"`
	Label         string `json:"label"`
	PriceModifier int64  `json:"priceModifier"`
}

// OptionGroup is a customizable attribute of a menu item (size, spice level, ...).
type OptionGroup struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Values []OptionValue `json:"values"`
}

type MenuItem struct {
	ID          int64         `json:"id"`
	Category    string        `json:"category"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       int64         `json:"price"`
	Options     []OptionGroup `json:"options,omitempty"`
	Images      []string      `json:"images,omitempty"`
}

const (
	CategoryFood    = "food"
	CategoryDrink   = "drink"
	CategoryDessert = "dessert"
)
