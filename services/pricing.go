package services

import (
	"sort"

	"atelier_server/structs"
	"atelier_server/structs/tables"
)

// ResolvePrice resolves the effective price of a single repair issue line.
// The precedence is strict: a custom override wins over the picked quality
// tier, the tier wins over the issue's base price, and a missing base price
// resolves to zero. The returned source tells which rule fired.
func ResolvePrice(ri *tables.RepairIssue) structs.ResolvedPrice {
	if ri.CustomPriceCents != nil {
		return structs.ResolvedPrice{
			Source:      structs.PriceSourceCustomOverride,
			AmountCents: *ri.CustomPriceCents,
		}
	}

	if ri.QualityTier != nil {
		return structs.ResolvedPrice{
			Source:      structs.PriceSourceQualityTier,
			AmountCents: ri.QualityTier.PriceCents,
		}
	}

	if ri.Issue != nil && ri.Issue.BasePriceCents != nil {
		return structs.ResolvedPrice{
			Source:      structs.PriceSourceBasePrice,
			AmountCents: *ri.Issue.BasePriceCents,
		}
	}

	return structs.ResolvedPrice{
		Source:      structs.PriceSourceZeroDefault,
		AmountCents: 0,
	}
}

// TotalPrice sums the resolved prices of all issue lines on a repair.
// An empty set of lines totals zero.
func TotalPrice(issues []tables.RepairIssue) int64 {
	var total int64
	for i := range issues {
		total += ResolvePrice(&issues[i]).AmountCents
	}
	return total
}

// InStockTiers keeps only the tiers whose availability is strictly
// in_stock. Low stock still means orderable, not fittable today.
func InStockTiers(tiers []tables.PartQualityTier) []tables.PartQualityTier {
	kept := make([]tables.PartQualityTier, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Availability == tables.PartAvailabilityInStock {
			kept = append(kept, tier)
		}
	}
	return kept
}

// EffectiveServicePrice picks the price a service_based issue advertises:
// the base price of its first pricing row, else the issue's own base price,
// else zero.
func EffectiveServicePrice(issue *tables.Issue, pricing []tables.ServicePricing) int64 {
	if len(pricing) > 0 {
		return pricing[0].BasePriceCents
	}
	if issue.BasePriceCents != nil {
		return *issue.BasePriceCents
	}
	return 0
}

// BuildPricingOptions projects an issue's price choices for clients.
// Part-based issues with an associated part expose that part's quality
// tiers ordered by tier label, even when there are none. Everything else
// exposes service pricing
// rows, synthesizing a single fixed-price row from the issue's base price
// when no row exists.
func BuildPricingOptions(issue *tables.Issue, tiers []tables.PartQualityTier, pricing []tables.ServicePricing) *structs.PricingOptionsResponse {
	resp := &structs.PricingOptionsResponse{
		IssueId:      issue.Id.String(),
		CategoryType: issue.CategoryType,
	}

	if issue.CategoryType == tables.IssueCategoryPartBased && issue.AssociatedPartId != nil {
		if tiers == nil {
			tiers = []tables.PartQualityTier{}
		}
		sort.SliceStable(tiers, func(i, j int) bool {
			return tiers[i].Tier < tiers[j].Tier
		})
		resp.QualityTiers = tiers
		return resp
	}

	if len(pricing) > 0 {
		resp.Services = pricing
		return resp
	}

	var base int64
	if issue.BasePriceCents != nil {
		base = *issue.BasePriceCents
	}
	resp.Services = []tables.ServicePricing{
		{
			IssueId:        issue.Id,
			PricingType:    tables.PricingTypeFixed,
			BasePriceCents: base,
		},
	}
	return resp
}
