// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"
)

// tenantNameFromEmail derives a placeholder studio name from the local
// part of the address; onboarding lets the owner rename it.
func tenantNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "My studio"
	}
	return local + "'s studio"
}

// slugify lowercases s, keeps ASCII letters and digits, collapses everything
// else into single dashes and appends a random suffix so slugs stay unique.
func slugify(s string) (string, error) {
	var b strings.Builder

	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "studio"
	}
	if len(base) > 40 {
		base = strings.TrimRight(base[:40], "-")
	}

	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	return base + "-" + hex.EncodeToString(suffix), nil
}
