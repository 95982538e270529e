package tables

import (
	"time"

	"github.com/google/uuid"
)

type DeviceType struct {
	tableName struct{}  `bun:"table:device_types,alias:dt"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name" validate:"required,min=2,max=100"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug" validate:"required,min=2,max=50"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Brand struct {
	tableName struct{}  `bun:"table:brands,alias:b"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name" validate:"required,min=1,max=100"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Series struct {
	tableName struct{}  `bun:"table:series,alias:se"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BrandId   uuid.UUID `bun:"brand_id,notnull,type:uuid" json:"brand_id" validate:"required,uuid4"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=1,max=100"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	Brand     *Brand    `bun:"rel:belongs-to,join:brand_id=id" json:"brand,omitempty"`
}

type ProductModel struct {
	tableName    struct{}    `bun:"table:product_models,alias:pm"`
	Id           uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string      `bun:"name,notnull" json:"name" validate:"required,min=1,max=150"`
	DeviceTypeId uuid.UUID   `bun:"device_type_id,notnull,type:uuid" json:"device_type_id" validate:"required,uuid4"`
	SeriesId     *uuid.UUID  `bun:"series_id,nullzero,type:uuid" json:"series_id,omitempty"`
	ReleaseYear  *int        `bun:"release_year,nullzero" json:"release_year,omitempty" validate:"omitempty,min=1990,max=2100"`
	CreatedAt    time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time   `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	DeviceType   *DeviceType `bun:"rel:belongs-to,join:device_type_id=id" json:"device_type,omitempty"`
	Series       *Series     `bun:"rel:belongs-to,join:series_id=id" json:"series,omitempty"`
}

type Part struct {
	tableName      struct{}         `bun:"table:parts,alias:pa"`
	Id             uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name           string           `bun:"name,notnull" json:"name" validate:"required,min=2,max=150"`
	Reference      string           `bun:"reference,notnull,unique" json:"reference" validate:"required,min=2,max=64"`
	ProductModelId *uuid.UUID       `bun:"product_model_id,nullzero,type:uuid" json:"product_model_id,omitempty"`
	Availability   PartAvailability `bun:"availability,notnull,default:'in_stock'" json:"availability" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued"`
	StockQuantity  int              `bun:"stock_quantity,notnull,default:0" json:"stock_quantity" validate:"omitempty,gte=0"`
	CreatedAt      time.Time        `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time        `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	ProductModel   *ProductModel    `bun:"rel:belongs-to,join:product_model_id=id" json:"product_model,omitempty"`
}

type PartAvailability string

const (
	PartAvailabilityInStock      PartAvailability = "in_stock"
	PartAvailabilityLowStock     PartAvailability = "low_stock"
	PartAvailabilityOutOfStock   PartAvailability = "out_of_stock"
	PartAvailabilityDiscontinued PartAvailability = "discontinued"
)
