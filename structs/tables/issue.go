package tables

import (
	"time"

	"github.com/google/uuid"
)

type Issue struct {
	tableName struct{}  `bun:"table:issues,alias:i"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=150"`

	// Category drives how the issue is priced: part_based issues resolve
	// through quality tiers of the associated part, service_based issues
	// through service pricing rows.
	CategoryType  IssueCategory `bun:"category_type,notnull,default:'service_based'" json:"category_type" validate:"required,oneof=part_based service_based"`
	Complexity    Complexity    `bun:"complexity,notnull,default:'medium'" json:"complexity" validate:"omitempty,oneof=low medium high critical"`
	DescriptionFr string        `bun:"description_fr" json:"description_fr,omitempty" validate:"omitempty,max=1000"`
	DescriptionEn string        `bun:"description_en" json:"description_en,omitempty" validate:"omitempty,max=1000"`

	// Fallback price used when no tier or service pricing applies.
	BasePriceCents *int64 `bun:"base_price_cents,nullzero" json:"base_price_cents,omitempty" validate:"omitempty,gte=0"`

	AssociatedPartId       *uuid.UUID `bun:"associated_part_id,nullzero,type:uuid" json:"associated_part_id,omitempty"`
	EstimatedDurationHours *float64   `bun:"estimated_duration_hours,nullzero" json:"estimated_duration_hours,omitempty" validate:"omitempty,gt=0"`
	WarrantyDays           int        `bun:"warranty_days,notnull,default:90" json:"warranty_days" validate:"omitempty,gte=0"`
	IsActive               bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt              time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt              time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	AssociatedPart *Part `bun:"rel:belongs-to,join:associated_part_id=id" json:"associated_part,omitempty"`

	// Device types this breakdown applies to (phones, tablets, ...)
	DeviceTypes []DeviceType `bun:"m2m:issue_device_types,join:Issue=DeviceType" json:"device_types,omitempty"`
}

// IssueDeviceType joins issues to the device types they apply to.
type IssueDeviceType struct {
	tableName    struct{}    `bun:"table:issue_device_types,alias:idt"`
	IssueId      uuid.UUID   `bun:"issue_id,pk,type:uuid" json:"issue_id"`
	Issue        *Issue      `bun:"rel:belongs-to,join:issue_id=id" json:"-"`
	DeviceTypeId uuid.UUID   `bun:"device_type_id,pk,type:uuid" json:"device_type_id"`
	DeviceType   *DeviceType `bun:"rel:belongs-to,join:device_type_id=id" json:"-"`
}

// RequiresPart is derived from the category, not stored: part_based issues
// need a part pick, service_based ones never do.
func (i *Issue) RequiresPart() bool {
	return i.CategoryType == IssueCategoryPartBased
}

type IssueCategory string

const (
	IssueCategoryPartBased    IssueCategory = "part_based"
	IssueCategoryServiceBased IssueCategory = "service_based"
)

type Complexity string

const (
	ComplexityLow      Complexity = "low"
	ComplexityMedium   Complexity = "medium"
	ComplexityHigh     Complexity = "high"
	ComplexityCritical Complexity = "critical"
)
