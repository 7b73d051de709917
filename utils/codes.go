package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCode produces an uppercase alphanumeric code of length n,
// optionally prefixed, for vouchers and referral invites.
func GenerateCode(prefix string, n int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if n > len(raw) {
		n = len(raw)
	}
	code := raw[:n]
	if prefix != "" {
		return prefix + "-" + code
	}
	return code
}
