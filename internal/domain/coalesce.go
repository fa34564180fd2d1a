package domain

import "time"

// Patch helpers: a nil pointer means "leave the field alone".

// StrFromPtr returns *p when p is non-nil, otherwise the fallback.
func StrFromPtr(fallback string, p *string) string {
	if p != nil {
		return *p
	}
	return fallback
}

// IntFromPtr returns *p when p is non-nil, otherwise the fallback.
func IntFromPtr(fallback int, p *int) int {
	if p != nil {
		return *p
	}
	return fallback
}

// Float64FromPtr returns *p when p is non-nil, otherwise the fallback.
func Float64FromPtr(fallback float64, p *float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

// BoolFromPtr returns *p when p is non-nil, otherwise the fallback.
func BoolFromPtr(fallback bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

// TimeFromPtr returns *p when p is non-nil, otherwise the fallback.
func TimeFromPtr(fallback time.Time, p *time.Time) time.Time {
	if p != nil {
		return *p
	}
	return fallback
}
