package tables

import (
	"time"

	"github.com/google/uuid"
)

type Repair struct {
	// Table Name and identifiers
	tableName struct{}  `bun:"table:repairs,alias:r"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Uid       string    `bun:"uid,notnull,unique" json:"uid"`

	// Customer Data
	ClientName  string `bun:"client_name,notnull" json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `bun:"client_email" json:"client_email,omitempty" validate:"omitempty,email"`
	ClientPhone string `bun:"client_phone,notnull" json:"client_phone" validate:"required,min=6,max=20"`

	// Device Data
	ProductModelId *uuid.UUID `bun:"product_model_id,nullzero,type:uuid" json:"product_model_id,omitempty"`
	Imei           string     `bun:"imei" json:"imei,omitempty" validate:"omitempty,min=8,max=20"`
	DevicePassword string     `bun:"device_password" json:"-"` // AES-GCM encrypted at rest

	// What the client reports broken, and what they handed over with it
	Description string `bun:"description,notnull" json:"description" validate:"required,max=2000"`
	Accessories string `bun:"accessories" json:"accessories,omitempty" validate:"omitempty,max=1000"`

	// Workflow
	Status        RepairStatus `bun:"status,notnull,default:'saisie'" json:"status" validate:"omitempty,oneof=saisie en-cours prete en-attente"`
	Date          time.Time    `bun:"date,notnull,default:current_date" json:"date"`
	ScheduledDate *time.Time   `bun:"scheduled_date,nullzero" json:"scheduled_date,omitempty"`
	Notes         string       `bun:"notes" json:"notes,omitempty" validate:"omitempty,max=2000"`
	Comment       string       `bun:"comment" json:"comment,omitempty" validate:"omitempty,max=2000"`

	// Pricing snapshot, recomputed from the issue lines on every write
	PriceCents       int64 `bun:"price_cents,notnull,default:0" json:"price_cents"`
	CardPaymentCents int64 `bun:"card_payment_cents,notnull,default:0" json:"card_payment_cents" validate:"omitempty,gte=0"`
	CashPaymentCents int64 `bun:"cash_payment_cents,notnull,default:0" json:"cash_payment_cents" validate:"omitempty,gte=0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	ProductModel *ProductModel `bun:"rel:belongs-to,join:product_model_id=id" json:"product_model,omitempty"`
	Issues       []RepairIssue `bun:"rel:has-many,join:id=repair_id" json:"issues"`
}

type RepairIssue struct {
	tableName struct{}  `bun:"table:repair_issues,alias:ri"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	RepairId  uuid.UUID `bun:"repair_id,notnull,type:uuid" json:"repair_id"`
	IssueId   uuid.UUID `bun:"issue_id,notnull,type:uuid" json:"issue_id" validate:"required,uuid4"`

	// Optional tier pick, only meaningful for part_based issues
	QualityTierId *uuid.UUID `bun:"quality_tier_id,nullzero,type:uuid" json:"quality_tier_id,omitempty"`

	// Manual override, wins over every catalog price when set
	CustomPriceCents *int64 `bun:"custom_price_cents,nullzero" json:"custom_price_cents,omitempty"`

	Notes     string    `bun:"notes" json:"notes,omitempty" validate:"omitempty,max=1000"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Issue       *Issue           `bun:"rel:belongs-to,join:issue_id=id" json:"issue,omitempty"`
	QualityTier *PartQualityTier `bun:"rel:belongs-to,join:quality_tier_id=id" json:"quality_tier,omitempty"`
}

type RepairStatus string

const (
	RepairStatusSaisie   RepairStatus = "saisie"
	RepairStatusEnCours  RepairStatus = "en-cours"
	RepairStatusPrete    RepairStatus = "prete"
	RepairStatusEnAttent RepairStatus = "en-attente"
)
