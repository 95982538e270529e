package services

import (
	"atelier_server/structs"
	"atelier_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestResolvePriceCustomOverrideWins(t *testing.T) {
	line := tables.RepairIssue{
		CustomPriceCents: int64Ptr(5000),
		QualityTier:      &tables.PartQualityTier{PriceCents: 8450},
		Issue:            &tables.Issue{BasePriceCents: int64Ptr(3000)},
	}

	resolved := ResolvePrice(&line)
	if resolved.Source != structs.PriceSourceCustomOverride {
		t.Fatalf("expected source %s got %s", structs.PriceSourceCustomOverride, resolved.Source)
	}
	if resolved.AmountCents != 5000 {
		t.Fatalf("expected 5000 got %d", resolved.AmountCents)
	}
}

func TestResolvePriceZeroCustomOverrideWins(t *testing.T) {
	// A custom price of zero is a deliberate override (free repair),
	// not an absent one.
	line := tables.RepairIssue{
		CustomPriceCents: int64Ptr(0),
		QualityTier:      &tables.PartQualityTier{PriceCents: 8450},
	}

	resolved := ResolvePrice(&line)
	if resolved.Source != structs.PriceSourceCustomOverride {
		t.Fatalf("expected source %s got %s", structs.PriceSourceCustomOverride, resolved.Source)
	}
	if resolved.AmountCents != 0 {
		t.Fatalf("expected 0 got %d", resolved.AmountCents)
	}
}

func TestResolvePriceQualityTierBeatsBasePrice(t *testing.T) {
	line := tables.RepairIssue{
		QualityTier: &tables.PartQualityTier{PriceCents: 8450},
		Issue:       &tables.Issue{BasePriceCents: int64Ptr(3000)},
	}

	resolved := ResolvePrice(&line)
	if resolved.Source != structs.PriceSourceQualityTier {
		t.Fatalf("expected source %s got %s", structs.PriceSourceQualityTier, resolved.Source)
	}
	if resolved.AmountCents != 8450 {
		t.Fatalf("expected 8450 got %d", resolved.AmountCents)
	}
}

func TestResolvePriceFallsBackToBasePrice(t *testing.T) {
	line := tables.RepairIssue{
		Issue: &tables.Issue{BasePriceCents: int64Ptr(3000)},
	}

	resolved := ResolvePrice(&line)
	if resolved.Source != structs.PriceSourceBasePrice {
		t.Fatalf("expected source %s got %s", structs.PriceSourceBasePrice, resolved.Source)
	}
	if resolved.AmountCents != 3000 {
		t.Fatalf("expected 3000 got %d", resolved.AmountCents)
	}
}

func TestResolvePriceDefaultsToZero(t *testing.T) {
	line := tables.RepairIssue{
		Issue: &tables.Issue{},
	}

	resolved := ResolvePrice(&line)
	if resolved.Source != structs.PriceSourceZeroDefault {
		t.Fatalf("expected source %s got %s", structs.PriceSourceZeroDefault, resolved.Source)
	}
	if resolved.AmountCents != 0 {
		t.Fatalf("expected 0 got %d", resolved.AmountCents)
	}
}

func TestTotalPriceSumsResolvedLines(t *testing.T) {
	lines := []tables.RepairIssue{
		{QualityTier: &tables.PartQualityTier{PriceCents: 8450}},
		{Issue: &tables.Issue{BasePriceCents: int64Ptr(4000)}},
	}

	if total := TotalPrice(lines); total != 12450 {
		t.Fatalf("expected 12450 got %d", total)
	}
}

func TestTotalPriceEmptyIsZero(t *testing.T) {
	if total := TotalPrice(nil); total != 0 {
		t.Fatalf("expected 0 got %d", total)
	}
}

func TestEffectiveServicePrice(t *testing.T) {
	issue := &tables.Issue{BasePriceCents: int64Ptr(2500)}

	pricing := []tables.ServicePricing{{BasePriceCents: 3900}, {BasePriceCents: 5900}}
	if got := EffectiveServicePrice(issue, pricing); got != 3900 {
		t.Fatalf("expected first pricing row 3900 got %d", got)
	}

	if got := EffectiveServicePrice(issue, nil); got != 2500 {
		t.Fatalf("expected issue base price 2500 got %d", got)
	}

	if got := EffectiveServicePrice(&tables.Issue{}, nil); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
}

func TestBuildPricingOptionsPartBased(t *testing.T) {
	partId := uuid.New()
	issue := &tables.Issue{
		Id:               uuid.New(),
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
	}
	tiers := []tables.PartQualityTier{
		{PartId: partId, Tier: tables.TierStandard, PriceCents: 8450},
		{PartId: partId, Tier: tables.TierOriginal, PriceCents: 12900},
	}

	resp := BuildPricingOptions(issue, tiers, nil)
	if resp.CategoryType != tables.IssueCategoryPartBased {
		t.Fatalf("expected category %s got %s", tables.IssueCategoryPartBased, resp.CategoryType)
	}
	if len(resp.QualityTiers) != 2 {
		t.Fatalf("expected 2 tiers got %d", len(resp.QualityTiers))
	}
	if resp.Services != nil {
		t.Fatalf("expected no service rows for a part based issue")
	}
}

func TestBuildPricingOptionsPartBasedWithoutTiers(t *testing.T) {
	// A part with no tier rows still answers with an empty list,
	// not a synthesized service price.
	partId := uuid.New()
	issue := &tables.Issue{
		Id:               uuid.New(),
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
		BasePriceCents:   int64Ptr(3000),
	}

	resp := BuildPricingOptions(issue, nil, nil)
	if resp.QualityTiers == nil {
		t.Fatalf("expected an empty tier slice, got nil")
	}
	if len(resp.QualityTiers) != 0 {
		t.Fatalf("expected 0 tiers got %d", len(resp.QualityTiers))
	}
	if resp.Services != nil {
		t.Fatalf("expected no service rows")
	}
}

func TestBuildPricingOptionsServiceBased(t *testing.T) {
	issue := &tables.Issue{
		Id:           uuid.New(),
		CategoryType: tables.IssueCategoryServiceBased,
	}
	pricing := []tables.ServicePricing{
		{IssueId: issue.Id, PricingType: tables.PricingTypeFixed, BasePriceCents: 4900},
	}

	resp := BuildPricingOptions(issue, nil, pricing)
	if len(resp.Services) != 1 || resp.Services[0].BasePriceCents != 4900 {
		t.Fatalf("expected the pricing row to pass through, got %+v", resp.Services)
	}
}

func TestBuildPricingOptionsSynthesizesFixedRow(t *testing.T) {
	issue := &tables.Issue{
		Id:             uuid.New(),
		CategoryType:   tables.IssueCategoryServiceBased,
		BasePriceCents: int64Ptr(3500),
	}

	resp := BuildPricingOptions(issue, nil, nil)
	if len(resp.Services) != 1 {
		t.Fatalf("expected a synthesized row got %d", len(resp.Services))
	}
	row := resp.Services[0]
	if row.PricingType != tables.PricingTypeFixed {
		t.Fatalf("expected fixed pricing got %s", row.PricingType)
	}
	if row.BasePriceCents != 3500 {
		t.Fatalf("expected 3500 got %d", row.BasePriceCents)
	}
	if row.IssueId != issue.Id {
		t.Fatalf("expected issue id %s got %s", issue.Id, row.IssueId)
	}
}

func TestBuildPricingOptionsSynthesizesZeroWithoutBasePrice(t *testing.T) {
	issue := &tables.Issue{
		Id:           uuid.New(),
		CategoryType: tables.IssueCategoryServiceBased,
	}

	resp := BuildPricingOptions(issue, nil, nil)
	if len(resp.Services) != 1 || resp.Services[0].BasePriceCents != 0 {
		t.Fatalf("expected a zero priced synthesized row, got %+v", resp.Services)
	}
}

func TestInStockTiersKeepsOnlyStrictlyInStock(t *testing.T) {
	tiers := []tables.PartQualityTier{
		{Tier: tables.TierStandard, Availability: tables.PartAvailabilityInStock},
		{Tier: tables.TierPremium, Availability: tables.PartAvailabilityLowStock},
		{Tier: tables.TierOriginal, Availability: tables.PartAvailabilityOutOfStock},
		{Tier: tables.TierRefurbished, Availability: tables.PartAvailabilityDiscontinued},
	}

	kept := InStockTiers(tiers)
	if len(kept) != 1 {
		t.Fatalf("expected 1 tier got %d", len(kept))
	}
	if kept[0].Tier != tables.TierStandard {
		t.Fatalf("expected the in_stock tier, got %s", kept[0].Tier)
	}
}

func TestBuildPricingOptionsOrdersTiersByLabel(t *testing.T) {
	partId := uuid.New()
	issue := &tables.Issue{
		Id:               uuid.New(),
		CategoryType:     tables.IssueCategoryPartBased,
		AssociatedPartId: &partId,
	}
	tiers := []tables.PartQualityTier{
		{Tier: tables.TierStandard, PriceCents: 4500},
		{Tier: tables.TierOriginal, PriceCents: 12000},
		{Tier: tables.TierPremium, PriceCents: 8450},
	}

	resp := BuildPricingOptions(issue, tiers, nil)
	if len(resp.QualityTiers) != 3 {
		t.Fatalf("expected 3 tiers got %d", len(resp.QualityTiers))
	}

	want := []tables.TierName{tables.TierOriginal, tables.TierPremium, tables.TierStandard}
	for i, tier := range resp.QualityTiers {
		if tier.Tier != want[i] {
			t.Fatalf("position %d: expected %s got %s", i, want[i], tier.Tier)
		}
	}
}
