package lib

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateRepairUid generates a unique repair number in the format: REP-XXXXXX
// where XXXXXX is a random 6-character alphanumeric string
func GenerateRepairUid() string {
	// Use a local rand.Source + rand.Rand for thread safety
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 6

	// Generate random part
	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("REP-%s", string(randomPart))
}
