package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// AvatarURL derives a stable pseudo-avatar URL from an email address. The
// same email always maps to the same avatar. The email is hashed so it
// never appears in the URL itself.
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("https://i.pravatar.cc/48?u=%s", hex.EncodeToString(sum[:8]))
}
