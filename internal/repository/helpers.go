package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// joinIDs flattens an id list into the comma-separated TEXT column form.
func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// splitIDs is the inverse of joinIDs; an empty column yields nil.
func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// parseDate parses a stored YYYY-MM-DD column value.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored date %q: %w", s, err)
	}
	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
