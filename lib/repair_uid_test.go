package lib

import (
	"strings"
	"testing"
)

func TestGenerateRepairUidFormat(t *testing.T) {
	uid := GenerateRepairUid()

	if !strings.HasPrefix(uid, "REP-") {
		t.Fatalf("expected REP- prefix, got %q", uid)
	}
	if len(uid) != len("REP-")+6 {
		t.Fatalf("expected 6 character suffix, got %q", uid)
	}

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for _, c := range uid[len("REP-"):] {
		if !strings.ContainsRune(chars, c) {
			t.Fatalf("unexpected character %q in uid %q", c, uid)
		}
	}
}
