package lib

import (
	"strings"
	"testing"
)

func TestGeneratePartReference(t *testing.T) {
	ref, err := GeneratePartReference("Screen Assembly", 4)
	if err != nil {
		t.Fatalf("GeneratePartReference returned error: %v", err)
	}

	parts := strings.SplitN(ref, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("expected NAME-SUFFIX format, got %q", ref)
	}
	if parts[0] != "SCR" {
		t.Errorf("expected prefix SCR, got %q", parts[0])
	}
	if len(parts[1]) != 4 {
		t.Errorf("expected 4 character suffix, got %q", parts[1])
	}
}

func TestGeneratePartReferenceStripsNonAlphanumeric(t *testing.T) {
	ref, err := GeneratePartReference("écran - LCD", 2)
	if err != nil {
		t.Fatalf("GeneratePartReference returned error: %v", err)
	}
	if !strings.HasPrefix(ref, "CRA-") {
		t.Errorf("expected prefix CRA from stripped name, got %q", ref)
	}
}

func TestGenerateRandomTokenUnique(t *testing.T) {
	a, err := GenerateRandomToken()
	if err != nil {
		t.Fatalf("GenerateRandomToken returned error: %v", err)
	}
	b, err := GenerateRandomToken()
	if err != nil {
		t.Fatalf("GenerateRandomToken returned error: %v", err)
	}
	if a == b {
		t.Error("expected two generated tokens to differ")
	}
}
