package structs

import "github.com/google/uuid"

// CreatePartRequest is the admin payload for adding a spare part. Reference
// is optional; one is derived from the name when omitted.
type CreatePartRequest struct {
	Name           string     `json:"name" validate:"required,min=2,max=150"`
	Reference      string     `json:"reference,omitempty" validate:"omitempty,min=2,max=64"`
	ProductModelId *uuid.UUID `json:"product_model_id,omitempty" validate:"omitempty"`
	Availability   string     `json:"availability,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued"`
	StockQuantity  int        `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
}
