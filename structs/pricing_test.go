package structs

import (
	"encoding/json"
	"strings"
	"testing"

	"atelier_server/structs/tables"
)

func TestPricingOptionsResponseSerializesEmptyTierList(t *testing.T) {
	resp := PricingOptionsResponse{
		IssueId:      "0d9a2c1e-0000-0000-0000-000000000000",
		CategoryType: tables.IssueCategoryPartBased,
		QualityTiers: []tables.PartQualityTier{},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// An empty tier list is an answer in itself and must not disappear
	if !strings.Contains(string(data), `"quality_tiers":[]`) {
		t.Fatalf("expected empty quality_tiers array in %s", data)
	}
}
