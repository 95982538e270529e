package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"atelier_server/database"
	"atelier_server/lib"
	"atelier_server/structs"
	"atelier_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type RepairService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	catalogService *CatalogService
	emailService   *EmailService
}

func NewRepairService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	catalogService *CatalogService,
	emailService *EmailService,
) *RepairService {
	return &RepairService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		catalogService: catalogService,
		emailService:   emailService,
	}
}

// RepairListOptions holds list filters parsed from query parameters
type RepairListOptions struct {
	Page           int
	PageSize       int
	Status         *string
	SearchTerm     string
	ProductModelId *uuid.UUID
	DateFrom       *time.Time
	DateTo         *time.Time
	SortBy         string
	SortDirection  string
}

// CreateRepairFromRequest creates a repair with its issue lines and computes
// the total price from the resolved line prices.
func (rs *RepairService) CreateRepairFromRequest(ctx context.Context, req *structs.CreateRepairRequest) (repair *tables.Repair, err error) {
	rs.logger.Info("CreateRepairFromRequest started", gecho.Field("issues_count", len(req.Issues)))

	// Validate and resolve the issue specs before opening the transaction
	issuesByID, tiersByID, err := rs.fetchSpecCatalog(ctx, req.Issues)
	if err != nil {
		return nil, err
	}

	repairId := uuid.New()
	resolved, specErr := resolveIssueSpecs(repairId, req.Issues, issuesByID, tiersByID)
	if specErr != nil {
		return nil, specErr
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, err
		}
	}

	var scheduledDate *time.Time
	if req.ScheduledDate != "" {
		t, parseErr := time.Parse("2006-01-02", req.ScheduledDate)
		if parseErr != nil {
			return nil, parseErr
		}
		scheduledDate = &t
	}

	// The device password is stored encrypted, never in clear
	encryptedPassword := ""
	if req.DevicePassword != "" {
		encryptedPassword, err = lib.Encrypt(req.DevicePassword, rs.cfg.Encryption.Key)
		if err != nil {
			rs.logger.Error("Failed to encrypt device password", gecho.Field("error", err))
			return nil, err
		}
	}

	tx, err := rs.db.BeginTx(ctx, nil)
	if err != nil {
		rs.logger.Error("Failed to begin transaction", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			rs.logger.Error(fmt.Sprintf("PANIC RECOVERED: %v", p),
				gecho.Field("panic_value", p),
				gecho.Field("stack_trace", string(debug.Stack())))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			rs.logger.Info("Rolling back transaction due to error", gecho.Field("error", err))
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	repair = &tables.Repair{
		Id:             repairId,
		Uid:            lib.GenerateRepairUid(),
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		ProductModelId: req.ProductModelId,
		Imei:           req.Imei,
		DevicePassword: encryptedPassword,
		Description:    req.Description,
		Accessories:    req.Accessories,
		Status:         tables.RepairStatusSaisie,
		Date:           date,
		ScheduledDate:  scheduledDate,
		Notes:          req.Notes,
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	rs.logger.Info("Inserting repair",
		gecho.Field("repair_id", repairId),
		gecho.Field("repair_uid", repair.Uid))
	_, err = tx.NewInsert().Model(repair).Exec(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if len(resolved) > 0 {
		_, err = tx.NewInsert().Model(&resolved).Exec(ctx)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
	}

	// Total price always reflects what is stored, even for zero lines
	total, err := rs.recomputePrice(ctx, tx, repairId)
	if err != nil {
		return nil, err
	}
	repair.PriceCents = total
	repair.Issues = resolved

	// Send intake confirmation asynchronously, outside the transaction
	if req.ClientEmail != "" {
		uid := repair.Uid
		go func() {
			if emailErr := rs.emailService.SendRepairReceivedEmail(req.ClientEmail, req.ClientName, uid, total); emailErr != nil {
				rs.logger.Error("Failed to send repair received email",
					gecho.Field("error", emailErr),
					gecho.Field("repair_uid", uid))
			}
		}()
	}

	return repair, nil
}

// GetRepairByID fetches a repair with its issue lines and their pricing relations
func (rs *RepairService) GetRepairByID(ctx context.Context, id uuid.UUID) (*tables.Repair, error) {
	repair, err := database.Query[tables.Repair](rs.db).
		Where("r.id", id).
		With("ProductModel").
		With("Issues").
		With("Issues.Issue").
		With("Issues.QualityTier").
		First(ctx)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, lib.ErrNotFound
	}
	return repair, nil
}

// GetRepairByUid fetches a repair by its human-facing REP-XXXXXX number
func (rs *RepairService) GetRepairByUid(ctx context.Context, uid string) (*tables.Repair, error) {
	repair, err := database.Query[tables.Repair](rs.db).
		Where("r.uid", uid).
		With("ProductModel").
		With("Issues").
		With("Issues.Issue").
		With("Issues.QualityTier").
		First(ctx)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, lib.ErrNotFound
	}
	return repair, nil
}

// GetDevicePassword decrypts and returns the repair's stored device unlock
// code. Empty when none was recorded at intake.
func (rs *RepairService) GetDevicePassword(ctx context.Context, id uuid.UUID) (string, error) {
	repair, err := database.FindByID[tables.Repair](rs.db, ctx, id)
	if err != nil {
		return "", err
	}
	if repair == nil {
		return "", lib.ErrNotFound
	}

	if repair.DevicePassword == "" {
		return "", nil
	}

	password, err := lib.Decrypt(repair.DevicePassword, rs.cfg.Encryption.Key)
	if err != nil {
		rs.logger.Error("Failed to decrypt device password",
			gecho.Field("error", err),
			gecho.Field("repair_id", id))
		return "", err
	}

	return password, nil
}

// GetRepairIssues returns a repair's issue lines with their resolved prices
func (rs *RepairService) GetRepairIssues(ctx context.Context, id uuid.UUID) ([]structs.PricedRepairIssue, error) {
	repair, err := rs.GetRepairByID(ctx, id)
	if err != nil {
		return nil, err
	}

	priced := make([]structs.PricedRepairIssue, 0, len(repair.Issues))
	for i := range repair.Issues {
		priced = append(priced, structs.PricedRepairIssue{
			RepairIssue: repair.Issues[i],
			Resolved:    ResolvePrice(&repair.Issues[i]),
		})
	}
	return priced, nil
}

// ListRepairs returns a paginated repair listing with optional filters
func (rs *RepairService) ListRepairs(ctx context.Context, opts *RepairListOptions) (*database.PaginationResult[tables.Repair], error) {
	q := database.Query[tables.Repair](rs.db).
		With("ProductModel").
		With("Issues").
		With("Issues.Issue").
		With("Issues.QualityTier")

	if opts.Status != nil {
		q = q.Where("r.status", *opts.Status)
	}

	if opts.ProductModelId != nil {
		q = q.Where("r.product_model_id", *opts.ProductModelId)
	}

	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		q = q.WhereRaw("(r.client_name ILIKE ? OR r.client_phone ILIKE ? OR r.uid ILIKE ?)", pattern, pattern, pattern)
	}

	if opts.DateFrom != nil {
		q = q.WhereOp("r.date", ">=", *opts.DateFrom)
	}

	if opts.DateTo != nil {
		q = q.WhereOp("r.date", "<=", *opts.DateTo)
	}

	sortBy := "r.created_at"
	switch opts.SortBy {
	case "date":
		sortBy = "r.date"
	case "scheduled_date":
		sortBy = "r.scheduled_date"
	case "price":
		sortBy = "r.price_cents"
	case "status":
		sortBy = "r.status"
	}

	direction := database.DESC
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	}
	q = q.OrderBy(sortBy, direction)

	return database.Paginate(q, ctx, opts.Page, opts.PageSize)
}

// UpdateRepairFromRequest applies a partial update. Scalar fields are only
// touched when present in the request. When the issues field is present the
// existing lines are dropped and recreated from the request. The stored
// total price is recomputed from the surviving lines on every update.
func (rs *RepairService) UpdateRepairFromRequest(ctx context.Context, id uuid.UUID, req *structs.UpdateRepairRequest) (repair *tables.Repair, err error) {
	existing, err := database.FindByID[tables.Repair](rs.db, ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, lib.ErrNotFound
	}

	var resolved []tables.RepairIssue
	if req.Issues != nil {
		issuesByID, tiersByID, fetchErr := rs.fetchSpecCatalog(ctx, *req.Issues)
		if fetchErr != nil {
			return nil, fetchErr
		}
		resolved, err = resolveIssueSpecs(id, *req.Issues, issuesByID, tiersByID)
		if err != nil {
			return nil, err
		}
	}

	updates := map[string]any{
		"updated_at": time.Now(),
	}

	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientEmail != nil {
		updates["client_email"] = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		updates["client_phone"] = *req.ClientPhone
	}
	if req.ProductModelId != nil {
		updates["product_model_id"] = *req.ProductModelId
	}
	if req.Imei != nil {
		updates["imei"] = *req.Imei
	}
	if req.DevicePassword != nil {
		encrypted := ""
		if *req.DevicePassword != "" {
			encrypted, err = lib.Encrypt(*req.DevicePassword, rs.cfg.Encryption.Key)
			if err != nil {
				return nil, err
			}
		}
		updates["device_password"] = encrypted
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Accessories != nil {
		updates["accessories"] = *req.Accessories
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ScheduledDate != nil {
		if *req.ScheduledDate == "" {
			updates["scheduled_date"] = nil
		} else {
			t, parseErr := time.Parse("2006-01-02", *req.ScheduledDate)
			if parseErr != nil {
				return nil, parseErr
			}
			updates["scheduled_date"] = t
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if req.CardPaymentCents != nil {
		updates["card_payment_cents"] = *req.CardPaymentCents
	}
	if req.CashPaymentCents != nil {
		updates["cash_payment_cents"] = *req.CashPaymentCents
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if req.Issues != nil {
			// Replace semantics: drop every existing line, recreate from
			// the request. An empty list clears the repair's issues.
			if _, txErr := tx.NewDelete().
				Model((*tables.RepairIssue)(nil)).
				Where("repair_id = ?", id).
				Exec(ctx); txErr != nil {
				return lib.MapPgError(txErr)
			}

			if len(resolved) > 0 {
				if _, txErr := tx.NewInsert().Model(&resolved).Exec(ctx); txErr != nil {
					return lib.MapPgError(txErr)
				}
			}
		}

		// Recompute unconditionally so the snapshot can never drift from
		// the stored lines, whatever fields this update touched.
		total, txErr := rs.recomputePrice(ctx, tx, id)
		if txErr != nil {
			return txErr
		}
		updates["price_cents"] = total

		updateQuery := tx.NewUpdate().Model((*tables.Repair)(nil)).Where("id = ?", id)
		for key, value := range updates {
			updateQuery = updateQuery.Set("? = ?", bun.Ident(key), value)
		}
		if _, txErr := updateQuery.Exec(ctx); txErr != nil {
			return lib.MapPgError(txErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	repair, err = rs.GetRepairByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ready notification fires on the transition into "prete"
	if req.Status != nil &&
		tables.RepairStatus(*req.Status) == tables.RepairStatusPrete &&
		existing.Status != tables.RepairStatusPrete &&
		repair.ClientEmail != "" {
		email, name, uid, price := repair.ClientEmail, repair.ClientName, repair.Uid, repair.PriceCents
		go func() {
			if emailErr := rs.emailService.SendRepairReadyEmail(email, name, uid, price); emailErr != nil {
				rs.logger.Error("Failed to send repair ready email",
					gecho.Field("error", emailErr),
					gecho.Field("repair_uid", uid))
			}
		}()
	}

	return repair, nil
}

// DeleteRepair removes a repair and its issue lines
func (rs *RepairService) DeleteRepair(ctx context.Context, id uuid.UUID) error {
	return database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.RepairIssue)(nil)).
			Where("repair_id = ?", id).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().
			Model((*tables.Repair)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}

		rows, _ := res.RowsAffected()
		if rows == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
}

// fetchSpecCatalog batch fetches the issues and quality tiers referenced by
// the specs, keyed by id for resolution.
func (rs *RepairService) fetchSpecCatalog(ctx context.Context, specs []structs.RepairIssueSpec) (map[uuid.UUID]*tables.Issue, map[uuid.UUID]*tables.PartQualityTier, error) {
	issueIds := make([]uuid.UUID, 0, len(specs))
	tierIds := make([]uuid.UUID, 0, len(specs))
	for _, spec := range specs {
		issueIds = append(issueIds, spec.IssueId)
		if spec.QualityTierId != nil {
			tierIds = append(tierIds, *spec.QualityTierId)
		}
	}

	issuesByID := make(map[uuid.UUID]*tables.Issue, len(issueIds))
	if len(issueIds) > 0 {
		issues, err := rs.catalogService.GetIssuesByIds(ctx, issueIds)
		if err != nil {
			return nil, nil, err
		}
		for i := range issues {
			issuesByID[issues[i].Id] = &issues[i]
		}
	}

	tiersByID := make(map[uuid.UUID]*tables.PartQualityTier, len(tierIds))
	if len(tierIds) > 0 {
		tiers, err := rs.catalogService.GetQualityTiersByIds(ctx, tierIds)
		if err != nil {
			return nil, nil, err
		}
		for i := range tiers {
			tiersByID[tiers[i].Id] = &tiers[i]
		}
	}

	return issuesByID, tiersByID, nil
}

// recomputePrice re-derives the repair's total price from the issue lines
// currently stored in the transaction's view and persists it.
func (rs *RepairService) recomputePrice(ctx context.Context, tx bun.Tx, repairId uuid.UUID) (int64, error) {
	var lines []tables.RepairIssue
	err := tx.NewSelect().
		Model(&lines).
		Relation("Issue").
		Relation("QualityTier").
		Where("ri.repair_id = ?", repairId).
		Scan(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}

	total := TotalPrice(lines)

	_, err = tx.NewUpdate().
		Model((*tables.Repair)(nil)).
		Set("price_cents = ?", total).
		Where("id = ?", repairId).
		Exec(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}

	return total, nil
}

// resolveIssueSpecs validates every spec against the fetched catalog and
// builds the repair issue rows, relations attached so prices can be
// resolved without further queries. Validation failures are collected
// across all specs and returned together; nothing is persisted here.
func resolveIssueSpecs(
	repairId uuid.UUID,
	specs []structs.RepairIssueSpec,
	issuesByID map[uuid.UUID]*tables.Issue,
	tiersByID map[uuid.UUID]*tables.PartQualityTier,
) ([]tables.RepairIssue, error) {
	validationErr := &lib.ValidationError{}
	resolved := make([]tables.RepairIssue, 0, len(specs))

	for i, spec := range specs {
		field := fmt.Sprintf("issues[%d]", i)

		issue, ok := issuesByID[spec.IssueId]
		if !ok {
			validationErr.Errors = append(validationErr.Errors, lib.FieldError{
				Field:   field + ".issue_id",
				Message: "issue not found",
			})
			continue
		}
		if !issue.IsActive {
			validationErr.Errors = append(validationErr.Errors, lib.FieldError{
				Field:   field + ".issue_id",
				Message: "issue is no longer active",
			})
			continue
		}

		var tier *tables.PartQualityTier
		if spec.QualityTierId != nil {
			tier, ok = tiersByID[*spec.QualityTierId]
			if !ok {
				validationErr.Errors = append(validationErr.Errors, lib.FieldError{
					Field:   field + ".quality_tier_id",
					Message: "quality tier not found",
				})
				continue
			}

			if issue.AssociatedPartId == nil {
				validationErr.Errors = append(validationErr.Errors, lib.FieldError{
					Field:   field + ".quality_tier_id",
					Message: "issue has no associated part, a quality tier cannot apply",
				})
				continue
			}

			if tier.PartId != *issue.AssociatedPartId {
				validationErr.Errors = append(validationErr.Errors, lib.FieldError{
					Field:   field + ".quality_tier_id",
					Message: "quality tier does not belong to the issue's associated part",
				})
				continue
			}
		}

		line := tables.RepairIssue{
			Id:               uuid.New(),
			RepairId:         repairId,
			IssueId:          spec.IssueId,
			QualityTierId:    spec.QualityTierId,
			CustomPriceCents: spec.CustomPriceCents,
			Notes:            spec.Notes,
			CreatedAt:        time.Now(),
			Issue:            issue,
			QualityTier:      tier,
		}
		resolved = append(resolved, line)
	}

	if len(validationErr.Errors) > 0 {
		return nil, validationErr
	}

	return resolved, nil
}
