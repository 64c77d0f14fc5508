package models

// Item is an inventory record managed through the protected item endpoints.
type Item struct {
	// ID is the server-assigned identifier of the item.
	ID int64 `json:"id,omitempty"`

	// Name is the unique display name of the item.
	Name string `json:"name"`

	// Price is the base price of the item, excluding tax.
	Price float64 `json:"price"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// Tax is the optional tax rate applied when presenting the item
	// (e.g. 0.2 for 20%). Zero means no tax.
	Tax float64 `json:"tax,omitempty"`
}

// ItemPatch carries a partial item update received via PATCH. Nil fields
// keep their stored values.
type ItemPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Tax         *float64 `json:"tax"`
}

// ApplyTo returns a copy of item with the patch's set fields applied.
func (p ItemPatch) ApplyTo(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Tax != nil {
		item.Tax = *p.Tax
	}
	return item
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// PriceWithTax returns the item price with the tax rate applied.
func (i Item) PriceWithTax() float64 {
	return i.Price * (1 + i.Tax)
}
