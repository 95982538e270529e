package services

import (
	"context"
	"time"

	"atelier_server/database"
	"atelier_server/lib"
	"atelier_server/structs"
	"atelier_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// IssueListOptions contains filtering options for issue catalog queries
type IssueListOptions struct {
	CategoryType   *string `json:"category_type,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	DeviceTypeSlug *string `json:"device_type,omitempty"`
	SearchTerm     string  `json:"search_term,omitempty"`
}

// GetIssues lists catalog issues with optional filters
func (cs *CatalogService) GetIssues(ctx context.Context, opts *IssueListOptions) ([]tables.Issue, error) {
	if opts == nil {
		opts = &IssueListOptions{}
	}

	q := database.Query[tables.Issue](cs.db).With("AssociatedPart").With("DeviceTypes")

	if opts.CategoryType != nil {
		q = q.Where("i.category_type", *opts.CategoryType)
	}

	if opts.IsActive != nil {
		q = q.Where("i.is_active", *opts.IsActive)
	}

	if opts.DeviceTypeSlug != nil {
		q = q.WhereRaw("i.id IN (SELECT idt.issue_id FROM issue_device_types idt JOIN device_types dt ON dt.id = idt.device_type_id WHERE dt.slug = ?)", *opts.DeviceTypeSlug)
	}

	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		q = q.WhereRaw("(i.name ILIKE ? OR i.description_fr ILIKE ? OR i.description_en ILIKE ?)", pattern, pattern, pattern)
	}

	return q.OrderBy("i.name", database.ASC).All(ctx)
}

// GetIssueByID fetches a single issue with its associated part
func (cs *CatalogService) GetIssueByID(ctx context.Context, id uuid.UUID) (*tables.Issue, error) {
	issue, err := database.Query[tables.Issue](cs.db).
		Where("i.id", id).
		With("AssociatedPart").
		With("DeviceTypes").
		First(ctx)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, lib.ErrNotFound
	}
	return issue, nil
}

// GetIssuesByIds batch fetches issues by id
func (cs *CatalogService) GetIssuesByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Issue, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	anyIds := make([]any, len(ids))
	for i, id := range ids {
		anyIds[i] = id
	}

	return database.Query[tables.Issue](cs.db).WhereIn("i.id", anyIds).All(ctx)
}

// CreateIssue inserts a new catalog issue
func (cs *CatalogService) CreateIssue(ctx context.Context, issue *tables.Issue) (*tables.Issue, error) {
	if issue.Id == uuid.Nil {
		issue.Id = uuid.New()
	}
	issue.CreatedAt = time.Now()
	issue.UpdatedAt = time.Now()

	created, err := database.Create(cs.db, ctx, issue)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return created, nil
}

// UpdateIssue applies a partial update to a catalog issue
func (cs *CatalogService) UpdateIssue(ctx context.Context, id uuid.UUID, updates map[string]any) (*tables.Issue, error) {
	updates["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.Issue](cs.db, ctx, id, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidatePricingOptions(id)

	return cs.GetIssueByID(ctx, id)
}

// DeactivateIssue soft-disables an issue so existing repairs keep their lines
func (cs *CatalogService) DeactivateIssue(ctx context.Context, id uuid.UUID) error {
	rows, err := database.UpdateByID[tables.Issue](cs.db, ctx, id, map[string]any{
		"is_active":  false,
		"updated_at": time.Now(),
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidatePricingOptions(id)
	return nil
}

// SetIssueDeviceTypes replaces the set of device types an issue applies to
func (cs *CatalogService) SetIssueDeviceTypes(ctx context.Context, issueId uuid.UUID, deviceTypeIds []uuid.UUID) error {
	issue, err := database.FindByID[tables.Issue](cs.db, ctx, issueId)
	if err != nil {
		return err
	}
	if issue == nil {
		return lib.ErrNotFound
	}

	rows := make([]tables.IssueDeviceType, 0, len(deviceTypeIds))
	for _, deviceTypeId := range deviceTypeIds {
		rows = append(rows, tables.IssueDeviceType{
			IssueId:      issueId,
			DeviceTypeId: deviceTypeId,
		})
	}

	return database.Transaction(ctx, func(tx bun.Tx) error {
		if _, txErr := tx.NewDelete().
			Model((*tables.IssueDeviceType)(nil)).
			Where("issue_id = ?", issueId).
			Exec(ctx); txErr != nil {
			return lib.MapPgError(txErr)
		}

		if len(rows) > 0 {
			if _, txErr := tx.NewInsert().Model(&rows).Exec(ctx); txErr != nil {
				return lib.MapPgError(txErr)
			}
		}
		return nil
	})
}

// GetQualityTiersByIds batch fetches quality tiers by id
func (cs *CatalogService) GetQualityTiersByIds(ctx context.Context, ids []uuid.UUID) ([]tables.PartQualityTier, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	anyIds := make([]any, len(ids))
	for i, id := range ids {
		anyIds[i] = id
	}

	return database.Query[tables.PartQualityTier](cs.db).WhereIn("pqt.id", anyIds).All(ctx)
}

// GetQualityTiersForPart lists the quality tiers priced for a part,
// ordered by tier label
func (cs *CatalogService) GetQualityTiersForPart(ctx context.Context, partId uuid.UUID) ([]tables.PartQualityTier, error) {
	return database.Query[tables.PartQualityTier](cs.db).
		Where("pqt.part_id", partId).
		OrderBy("pqt.tier", database.ASC).
		All(ctx)
}

// GetInStockQualityTiersForPart narrows the part's tiers to the ones a
// technician can fit right now
func (cs *CatalogService) GetInStockQualityTiersForPart(ctx context.Context, partId uuid.UUID) ([]tables.PartQualityTier, error) {
	tiers, err := cs.GetQualityTiersForPart(ctx, partId)
	if err != nil {
		return nil, err
	}
	return InStockTiers(tiers), nil
}

// CreateQualityTier inserts a tier price for a part. The part and tier name
// pair is unique; a duplicate surfaces as ErrConflict.
func (cs *CatalogService) CreateQualityTier(ctx context.Context, tier *tables.PartQualityTier) (*tables.PartQualityTier, error) {
	if tier.Id == uuid.Nil {
		tier.Id = uuid.New()
	}
	if tier.Availability == "" {
		tier.Availability = tables.PartAvailabilityInStock
	}
	if tier.WarrantyDays == 0 {
		tier.WarrantyDays = 90
	}
	tier.CreatedAt = time.Now()
	tier.UpdatedAt = time.Now()

	created, err := database.Create(cs.db, ctx, tier)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.invalidatePricingOptionsForPart(ctx, tier.PartId)

	return created, nil
}

// UpdateQualityTier applies a partial update to a tier price
func (cs *CatalogService) UpdateQualityTier(ctx context.Context, id uuid.UUID, updates map[string]any) (*tables.PartQualityTier, error) {
	updates["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.PartQualityTier](cs.db, ctx, id, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	tier, err := database.FindByID[tables.PartQualityTier](cs.db, ctx, id)
	if err != nil {
		return nil, err
	}
	if tier != nil {
		cs.invalidatePricingOptionsForPart(ctx, tier.PartId)
	}

	return tier, nil
}

// DeleteQualityTier removes a tier price
func (cs *CatalogService) DeleteQualityTier(ctx context.Context, id uuid.UUID) error {
	tier, err := database.FindByID[tables.PartQualityTier](cs.db, ctx, id)
	if err != nil {
		return err
	}
	if tier == nil {
		return lib.ErrNotFound
	}

	if _, err := database.DeleteByID[tables.PartQualityTier](cs.db, ctx, id); err != nil {
		return lib.MapPgError(err)
	}

	cs.invalidatePricingOptionsForPart(ctx, tier.PartId)
	return nil
}

// GetServicePricingForIssue lists the pricing rows of a service issue
func (cs *CatalogService) GetServicePricingForIssue(ctx context.Context, issueId uuid.UUID) ([]tables.ServicePricing, error) {
	return database.Query[tables.ServicePricing](cs.db).
		Where("sp.issue_id", issueId).
		OrderBy("sp.created_at", database.ASC).
		All(ctx)
}

// CreateServicePricing inserts a pricing row for a service issue
func (cs *CatalogService) CreateServicePricing(ctx context.Context, pricing *tables.ServicePricing) (*tables.ServicePricing, error) {
	if pricing.Id == uuid.Nil {
		pricing.Id = uuid.New()
	}
	if pricing.ComplexityLevel == "" {
		pricing.ComplexityLevel = tables.ComplexityMedium
	}
	pricing.CreatedAt = time.Now()
	pricing.UpdatedAt = time.Now()

	created, err := database.Create(cs.db, ctx, pricing)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.invalidatePricingOptions(pricing.IssueId)

	return created, nil
}

// GetPricingOptions returns the price choices for an issue, cached in Redis.
// Part-based issues expose their part's quality tiers, service issues their
// pricing rows with a synthesized fixed row as fallback.
func (cs *CatalogService) GetPricingOptions(ctx context.Context, issueId uuid.UUID) (*structs.PricingOptionsResponse, error) {
	// Try to get from cache first
	cached, err := cs.cacheService.GetPricingOptions(issueId)
	if err != nil {
		cs.logger.Warn("Failed to get pricing options from cache", gecho.Field("error", err), gecho.Field("issue_id", issueId))
	} else if cached != nil {
		cs.logger.Debug("Pricing options retrieved from cache", gecho.Field("issue_id", issueId))
		return cached, nil
	}

	issue, err := cs.GetIssueByID(ctx, issueId)
	if err != nil {
		return nil, err
	}

	var tiers []tables.PartQualityTier
	if issue.CategoryType == tables.IssueCategoryPartBased && issue.AssociatedPartId != nil {
		tiers, err = cs.GetQualityTiersForPart(ctx, *issue.AssociatedPartId)
		if err != nil {
			return nil, err
		}
	}

	var pricing []tables.ServicePricing
	if issue.CategoryType != tables.IssueCategoryPartBased || issue.AssociatedPartId == nil {
		pricing, err = cs.GetServicePricingForIssue(ctx, issueId)
		if err != nil {
			return nil, err
		}
	}

	options := BuildPricingOptions(issue, tiers, pricing)

	// Cache asynchronously
	go func() {
		if err := cs.cacheService.SetPricingOptions(issueId, options); err != nil {
			cs.logger.Warn("Failed to cache pricing options", gecho.Field("error", err), gecho.Field("issue_id", issueId))
		}
	}()

	return options, nil
}

// CreatePart inserts a spare part. The reference is generated from the part
// name when the caller leaves it empty.
func (cs *CatalogService) CreatePart(ctx context.Context, req *structs.CreatePartRequest) (*tables.Part, error) {
	reference := req.Reference
	if reference == "" {
		generated, err := lib.GeneratePartReference(req.Name, 4)
		if err != nil {
			return nil, err
		}
		reference = generated
	}

	availability := tables.PartAvailabilityInStock
	if req.Availability != "" {
		availability = tables.PartAvailability(req.Availability)
	}

	part := &tables.Part{
		Id:             uuid.New(),
		Name:           req.Name,
		Reference:      reference,
		ProductModelId: req.ProductModelId,
		Availability:   availability,
		StockQuantity:  req.StockQuantity,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	created, err := database.Create(cs.db, ctx, part)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return created, nil
}

// UpdatePart applies a partial update to a part, typically stock movements
func (cs *CatalogService) UpdatePart(ctx context.Context, id uuid.UUID, updates map[string]any) (*tables.Part, error) {
	updates["updated_at"] = time.Now()

	rows, err := database.UpdateByID[tables.Part](cs.db, ctx, id, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return database.FindByID[tables.Part](cs.db, ctx, id)
}

// GetParts lists parts, optionally filtered to a product model
func (cs *CatalogService) GetParts(ctx context.Context, productModelId *uuid.UUID) ([]tables.Part, error) {
	q := database.Query[tables.Part](cs.db).With("ProductModel")

	if productModelId != nil {
		q = q.Where("pa.product_model_id", *productModelId)
	}

	return q.OrderBy("pa.name", database.ASC).All(ctx)
}

// GetProductModels lists device models with their brand hierarchy
func (cs *CatalogService) GetProductModels(ctx context.Context) ([]tables.ProductModel, error) {
	return database.Query[tables.ProductModel](cs.db).
		With("DeviceType").
		With("Series").
		With("Series.Brand").
		OrderBy("pm.name", database.ASC).
		All(ctx)
}

// GetBrands lists device brands
func (cs *CatalogService) GetBrands(ctx context.Context) ([]tables.Brand, error) {
	return database.Query[tables.Brand](cs.db).OrderBy("b.name", database.ASC).All(ctx)
}

// GetDeviceTypes lists device types
func (cs *CatalogService) GetDeviceTypes(ctx context.Context) ([]tables.DeviceType, error) {
	return database.Query[tables.DeviceType](cs.db).OrderBy("dt.name", database.ASC).All(ctx)
}

func (cs *CatalogService) invalidatePricingOptions(issueId uuid.UUID) {
	go func() {
		if err := cs.cacheService.DeletePricingOptions(issueId); err != nil {
			cs.logger.Warn("Failed to invalidate pricing options cache",
				gecho.Field("error", err),
				gecho.Field("issue_id", issueId))
		}
	}()
}

// invalidatePricingOptionsForPart drops the cached options of every issue
// pointing at the part, since tier changes alter their projections.
func (cs *CatalogService) invalidatePricingOptionsForPart(ctx context.Context, partId uuid.UUID) {
	issues, err := database.Query[tables.Issue](cs.db).
		Where("i.associated_part_id", partId).
		All(ctx)
	if err != nil {
		cs.logger.Warn("Failed to list issues for cache invalidation",
			gecho.Field("error", err),
			gecho.Field("part_id", partId))
		return
	}

	for _, issue := range issues {
		cs.invalidatePricingOptions(issue.Id)
	}
}
