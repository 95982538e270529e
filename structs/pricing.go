package structs

import "atelier_server/structs/tables"

// PriceSource says which rule of the precedence chain produced a resolved
// price. The chain is: custom override, then quality tier, then the issue's
// base price, then zero.
type PriceSource string

const (
	PriceSourceCustomOverride PriceSource = "custom_override"
	PriceSourceQualityTier    PriceSource = "quality_tier"
	PriceSourceBasePrice      PriceSource = "base_price"
	PriceSourceZeroDefault    PriceSource = "zero_default"
)

type ResolvedPrice struct {
	Source      PriceSource `json:"source"`
	AmountCents int64       `json:"amount_cents"`
}

// PricingOptionsResponse is the projection a front end uses to offer price
// choices for an issue: either the quality tiers of its associated part, or
// its service pricing rows. Exactly one of the two slices is populated.
type PricingOptionsResponse struct {
	IssueId      string               `json:"issue_id"`
	CategoryType tables.IssueCategory `json:"category_type"`
	// No omitempty here: an empty tier list is a valid answer and must
	// serialize as [] rather than disappear.
	QualityTiers []tables.PartQualityTier `json:"quality_tiers"`
	Services     []tables.ServicePricing  `json:"services"`
}

// PricedRepairIssue pairs an issue line with the price the resolver picked
// for it, for read endpoints that expose line level pricing.
type PricedRepairIssue struct {
	tables.RepairIssue
	Resolved ResolvedPrice `json:"resolved_price"`
}
