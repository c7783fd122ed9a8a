package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// InstalledAppsHash creates a deterministic hash from the active module groups.
// The order and repetition of the input does not affect the result.
func InstalledAppsHash(apps []string) string {
	sorted := slices.Compact(slices.Sorted(slices.Values(apps)))

	var builder strings.Builder
	for _, app := range sorted {
		builder.WriteString(app)
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
