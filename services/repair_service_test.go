package services

import (
	"atelier_server/lib"
	"atelier_server/structs"
	"atelier_server/structs/tables"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type specCatalog struct {
	issuesByID map[uuid.UUID]*tables.Issue
	tiersByID  map[uuid.UUID]*tables.PartQualityTier
}

func newSpecCatalog() *specCatalog {
	return &specCatalog{
		issuesByID: make(map[uuid.UUID]*tables.Issue),
		tiersByID:  make(map[uuid.UUID]*tables.PartQualityTier),
	}
}

func (c *specCatalog) addIssue(issue *tables.Issue) *tables.Issue {
	if issue.Id == uuid.Nil {
		issue.Id = uuid.New()
	}
	c.issuesByID[issue.Id] = issue
	return issue
}

func (c *specCatalog) addTier(tier *tables.PartQualityTier) *tables.PartQualityTier {
	if tier.Id == uuid.Nil {
		tier.Id = uuid.New()
	}
	c.tiersByID[tier.Id] = tier
	return tier
}

func TestResolveIssueSpecsBuildsLinesWithRelations(t *testing.T) {
	cat := newSpecCatalog()
	partId := uuid.New()
	issue := cat.addIssue(&tables.Issue{
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
		IsActive:         true,
	})
	tier := cat.addTier(&tables.PartQualityTier{PartId: partId, Tier: tables.TierPremium, PriceCents: 8450})

	repairId := uuid.New()
	specs := []structs.RepairIssueSpec{
		{IssueId: issue.Id, QualityTierId: &tier.Id, Notes: "front glass"},
	}

	lines, err := resolveIssueSpecs(repairId, specs, cat.issuesByID, cat.tiersByID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line got %d", len(lines))
	}

	line := lines[0]
	if line.RepairId != repairId {
		t.Fatalf("expected repair id %s got %s", repairId, line.RepairId)
	}
	if line.Issue != issue || line.QualityTier != tier {
		t.Fatalf("expected issue and tier relations to be attached")
	}
	if line.Notes != "front glass" {
		t.Fatalf("expected notes to carry over, got %q", line.Notes)
	}

	// The attached relations must be enough to price the line
	if got := ResolvePrice(&line).AmountCents; got != 8450 {
		t.Fatalf("expected resolved price 8450 got %d", got)
	}
}

func TestResolveIssueSpecsUnknownIssue(t *testing.T) {
	cat := newSpecCatalog()
	specs := []structs.RepairIssueSpec{{IssueId: uuid.New()}}

	_, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)

	var validationErr *lib.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *lib.ValidationError got %T", err)
	}
	if len(validationErr.Errors) != 1 {
		t.Fatalf("expected 1 field error got %d", len(validationErr.Errors))
	}
	if validationErr.Errors[0].Field != "issues[0].issue_id" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestResolveIssueSpecsInactiveIssue(t *testing.T) {
	cat := newSpecCatalog()
	issue := cat.addIssue(&tables.Issue{IsActive: false})

	specs := []structs.RepairIssueSpec{{IssueId: issue.Id}}

	_, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)

	var validationErr *lib.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *lib.ValidationError got %T", err)
	}
	if validationErr.Errors[0].Field != "issues[0].issue_id" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestResolveIssueSpecsTierForIssueWithoutPart(t *testing.T) {
	cat := newSpecCatalog()
	issue := cat.addIssue(&tables.Issue{
		CategoryType: tables.IssueCategoryServiceBased,
		IsActive:     true,
	})
	tier := cat.addTier(&tables.PartQualityTier{PartId: uuid.New(), PriceCents: 5000})

	specs := []structs.RepairIssueSpec{{IssueId: issue.Id, QualityTierId: &tier.Id}}

	_, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)

	var validationErr *lib.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *lib.ValidationError got %T", err)
	}
	if validationErr.Errors[0].Field != "issues[0].quality_tier_id" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestResolveIssueSpecsTierPartMismatch(t *testing.T) {
	cat := newSpecCatalog()
	partId := uuid.New()
	issue := cat.addIssue(&tables.Issue{
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
		IsActive:         true,
	})
	// Tier belongs to a different part
	tier := cat.addTier(&tables.PartQualityTier{PartId: uuid.New(), PriceCents: 5000})

	specs := []structs.RepairIssueSpec{{IssueId: issue.Id, QualityTierId: &tier.Id}}

	_, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)

	var validationErr *lib.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *lib.ValidationError got %T", err)
	}
	if validationErr.Errors[0].Field != "issues[0].quality_tier_id" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestResolveIssueSpecsCollectsAllErrors(t *testing.T) {
	cat := newSpecCatalog()
	active := cat.addIssue(&tables.Issue{IsActive: true})
	inactive := cat.addIssue(&tables.Issue{IsActive: false})

	specs := []structs.RepairIssueSpec{
		{IssueId: active.Id},
		{IssueId: inactive.Id},
		{IssueId: uuid.New()},
	}

	_, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)

	var validationErr *lib.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *lib.ValidationError got %T", err)
	}
	// One valid spec, two failing specs: both failures reported, nothing resolved
	if len(validationErr.Errors) != 2 {
		t.Fatalf("expected 2 field errors got %d", len(validationErr.Errors))
	}
	if validationErr.Errors[0].Field != "issues[1].issue_id" || validationErr.Errors[1].Field != "issues[2].issue_id" {
		t.Fatalf("unexpected fields %q, %q", validationErr.Errors[0].Field, validationErr.Errors[1].Field)
	}
}

func TestResolveIssueSpecsCustomPriceWithoutTier(t *testing.T) {
	cat := newSpecCatalog()
	issue := cat.addIssue(&tables.Issue{
		CategoryType:   tables.IssueCategoryServiceBased,
		IsActive:       true,
		BasePriceCents: int64Ptr(4000),
	})

	custom := int64(2500)
	specs := []structs.RepairIssueSpec{{IssueId: issue.Id, CustomPriceCents: &custom}}

	lines, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	resolved := ResolvePrice(&lines[0])
	if resolved.Source != structs.PriceSourceCustomOverride || resolved.AmountCents != 2500 {
		t.Fatalf("expected custom override 2500, got %s %d", resolved.Source, resolved.AmountCents)
	}
}

func TestResolveIssueSpecsRejectsWholeBatchOnOneBadSpec(t *testing.T) {
	cat := newSpecCatalog()
	good := cat.addIssue(&tables.Issue{IsActive: true, BasePriceCents: int64Ptr(4000)})

	specs := []structs.RepairIssueSpec{
		{IssueId: good.Id},
		{IssueId: uuid.New()}, // not in the catalog
	}

	lines, err := resolveIssueSpecs(uuid.New(), specs, cat.issuesByID, cat.tiersByID)
	if err == nil {
		t.Fatal("expected an error for the unknown issue")
	}
	// One bad spec must not let the valid ones through: nothing is
	// resolved, so nothing can be persisted.
	if lines != nil {
		t.Fatalf("expected no resolved lines, got %d", len(lines))
	}
}

func TestResolveIssueSpecsSameSpecsResolveIdentically(t *testing.T) {
	cat := newSpecCatalog()
	partId := uuid.New()
	issue := cat.addIssue(&tables.Issue{
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
		IsActive:         true,
	})
	tier := cat.addTier(&tables.PartQualityTier{PartId: partId, Tier: tables.TierPremium, PriceCents: 8450})
	service := cat.addIssue(&tables.Issue{IsActive: true, BasePriceCents: int64Ptr(4000)})

	repairId := uuid.New()
	specs := []structs.RepairIssueSpec{
		{IssueId: issue.Id, QualityTierId: &tier.Id},
		{IssueId: service.Id, CustomPriceCents: int64Ptr(2500)},
	}

	first, err := resolveIssueSpecs(repairId, specs, cat.issuesByID, cat.tiersByID)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := resolveIssueSpecs(repairId, specs, cat.issuesByID, cat.tiersByID)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	// Issue lines are replaced wholesale on update, so resolving the
	// same specs again must yield the same set and the same total.
	if len(first) != len(second) {
		t.Fatalf("expected equal line counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].IssueId != second[i].IssueId {
			t.Fatalf("line %d: issue ids differ", i)
		}
		if (first[i].QualityTierId == nil) != (second[i].QualityTierId == nil) {
			t.Fatalf("line %d: tier presence differs", i)
		}
	}
	if TotalPrice(first) != TotalPrice(second) {
		t.Fatalf("expected equal totals, got %d and %d", TotalPrice(first), TotalPrice(second))
	}
	if TotalPrice(first) != 8450+2500 {
		t.Fatalf("expected total 10950 got %d", TotalPrice(first))
	}
}
