package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Well-known id prefixes, one per collection, so ids stay human-distinguishable
// in logs and fixtures ("c-..." is always a client, "te-..." a time entry).
const (
	PrefixClient         = "c"
	PrefixProject        = "p"
	PrefixTask           = "t"
	PrefixTimeEntry      = "te"
	PrefixProgressUpdate = "pu"
	PrefixNotification   = "n"
	PrefixUser           = "u"
)

// NewID returns a fresh collection-scoped id: the collection prefix plus a
// UUID fragment. Uniqueness within a collection is the only contract.
func NewID(prefix string) string {
	frag := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return prefix + "-" + frag
}
