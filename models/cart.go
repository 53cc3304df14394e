package models

// OptionSelection is the chosen value for one option group of a menu item.
// Immutable once attached to a line item.
type OptionSelection struct {
	OptionID      string `json:"optionId"`
	Value         string `json:"value"`
	Label         string `json:"label"`
	PriceModifier int64  `json:"priceModifier"`
}

// LineItem is one configured, priced entry in the cart. UnitPrice is frozen
// at creation; only Quantity and TotalPrice change afterwards.
type LineItem struct {
	ID           string            `json:"id"`
	ProductID    int64             `json:"productId"`
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	Selections   []OptionSelection `json:"selections"`
	Notes        string            `json:"notes"`
	Quantity     int               `json:"quantity"`
	BasePrice    int64             `json:"basePrice"`
	OptionsPrice int64             `json:"optionsPrice"`
	UnitPrice    int64             `json:"unitPrice"`
	TotalPrice   int64             `json:"totalPrice"`
}

// ProposedItem is what a product-customization surface (detail page, quick
// view modal) hands to the cart: everything except the id and the prices the
// cart derives itself.
type ProposedItem struct {
	ProductID  int64             `json:"productId"`
	Name       string            `json:"name"`
	Image      string            `json:"image"`
	Selections []OptionSelection `json:"selections"`
	Notes      string            `json:"notes"`
	Quantity   int               `json:"quantity"`
	BasePrice  int64             `json:"basePrice"`
}
