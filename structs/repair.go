package structs

import "github.com/google/uuid"

// RepairIssueSpec is one requested issue line on a repair. The quality tier
// and custom price are both optional; a custom price, when present, wins
// over any catalog price.
type RepairIssueSpec struct {
	IssueId          uuid.UUID  `json:"issue_id" validate:"required,uuid4"`
	QualityTierId    *uuid.UUID `json:"quality_tier_id,omitempty"`
	CustomPriceCents *int64     `json:"custom_price_cents,omitempty"`
	Notes            string     `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type CreateRepairRequest struct {
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	ClientPhone string `json:"client_phone" validate:"required,min=6,max=20"`

	ProductModelId *uuid.UUID `json:"product_model_id,omitempty"`
	Imei           string     `json:"imei" validate:"omitempty,min=8,max=20"`
	DevicePassword string     `json:"device_password" validate:"omitempty,max=100"`

	// The fault as reported at intake; a repair without one is meaningless
	Description string `json:"description" validate:"required,max=2000"`
	Accessories string `json:"accessories" validate:"omitempty,max=1000"`

	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`

	Issues []RepairIssueSpec `json:"issues" validate:"omitempty,dive"`
}

// UpdateRepairRequest uses pointers throughout so absent fields are left
// untouched. A nil Issues leaves the issue lines alone; a non-nil empty
// slice clears them.
type UpdateRepairRequest struct {
	ClientName  *string `json:"client_name,omitempty" validate:"omitempty,min=2,max=100"`
	ClientEmail *string `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientPhone *string `json:"client_phone,omitempty" validate:"omitempty,min=6,max=20"`

	ProductModelId *uuid.UUID `json:"product_model_id,omitempty"`
	Imei           *string    `json:"imei,omitempty" validate:"omitempty,min=8,max=20"`
	DevicePassword *string    `json:"device_password,omitempty" validate:"omitempty,max=100"`

	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Accessories *string `json:"accessories,omitempty" validate:"omitempty,max=1000"`

	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=saisie en-cours prete en-attente"`
	ScheduledDate *string `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Comment       *string `json:"comment,omitempty" validate:"omitempty,max=2000"`

	CardPaymentCents *int64 `json:"card_payment_cents,omitempty" validate:"omitempty,gte=0"`
	CashPaymentCents *int64 `json:"cash_payment_cents,omitempty" validate:"omitempty,gte=0"`

	Issues *[]RepairIssueSpec `json:"issues,omitempty" validate:"omitempty,dive"`
}
