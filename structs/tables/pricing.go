package tables

import (
	"time"

	"github.com/google/uuid"
)

type PartQualityTier struct {
	tableName struct{}  `bun:"table:part_quality_tiers,alias:pqt"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	PartId    uuid.UUID `bun:"part_id,notnull,type:uuid,unique:part_tier" json:"part_id" validate:"required,uuid4"`
	Tier      TierName  `bun:"tier,notnull,unique:part_tier" json:"tier" validate:"required,oneof=standard premium original refurbished"`

	// Customer price for repairing with this tier of part.
	PriceCents    int64 `bun:"price_cents,notnull" json:"price_cents" validate:"gte=0"`
	SupplierCents int64 `bun:"supplier_cents,notnull,default:0" json:"supplier_cents" validate:"omitempty,gte=0"`

	WarrantyDays  int    `bun:"warranty_days,notnull,default:90" json:"warranty_days" validate:"omitempty,gte=0"`
	DescriptionFr string `bun:"description_fr" json:"description_fr,omitempty" validate:"omitempty,max=1000"`
	DescriptionEn string `bun:"description_en" json:"description_en,omitempty" validate:"omitempty,max=1000"`

	Availability PartAvailability `bun:"availability,notnull,default:'in_stock'" json:"availability" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued"`
	CreatedAt    time.Time        `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time        `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	Part         *Part            `bun:"rel:belongs-to,join:part_id=id" json:"part,omitempty"`
}

type TierName string

const (
	TierStandard    TierName = "standard"
	TierPremium     TierName = "premium"
	TierOriginal    TierName = "original"
	TierRefurbished TierName = "refurbished"
)

type ServicePricing struct {
	tableName struct{}  `bun:"table:service_pricing,alias:sp"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	IssueId   uuid.UUID `bun:"issue_id,notnull,type:uuid" json:"issue_id" validate:"required,uuid4"`

	PricingType    PricingType `bun:"pricing_type,notnull,default:'fixed'" json:"pricing_type" validate:"required,oneof=fixed hourly tiered"`
	BasePriceCents int64       `bun:"base_price_cents,notnull" json:"base_price_cents" validate:"gte=0"`
	HourlyCents    *int64      `bun:"hourly_cents,nullzero" json:"hourly_cents,omitempty" validate:"omitempty,gte=0"`
	MinPriceCents  *int64      `bun:"min_price_cents,nullzero" json:"min_price_cents,omitempty" validate:"omitempty,gte=0"`
	MaxPriceCents  *int64      `bun:"max_price_cents,nullzero" json:"max_price_cents,omitempty" validate:"omitempty,gte=0"`

	TimeEstimateMinutes *int       `bun:"time_estimate_minutes,nullzero" json:"time_estimate_minutes,omitempty" validate:"omitempty,gt=0"`
	ComplexityLevel     Complexity `bun:"complexity_level,notnull,default:'medium'" json:"complexity_level" validate:"omitempty,oneof=low medium high critical"`
	DescriptionFr       string     `bun:"description_fr" json:"description_fr,omitempty" validate:"omitempty,max=1000"`
	DescriptionEn       string     `bun:"description_en" json:"description_en,omitempty" validate:"omitempty,max=1000"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	Issue     *Issue    `bun:"rel:belongs-to,join:issue_id=id" json:"issue,omitempty"`
}

type PricingType string

const (
	PricingTypeFixed  PricingType = "fixed"
	PricingTypeHourly PricingType = "hourly"
	PricingTypeTiered PricingType = "tiered"
)
