package provider

import "strings"

// DefaultLimit caps filter results when no explicit limit is supplied.
const DefaultLimit = 50

// Criteria carries the optional lookup filters for one request.
// Unset (empty) fields impose no constraint.
type Criteria struct {
	State     string `json:"state"`
	City      string `json:"city"`
	Specialty string `json:"specialty"`
	Insurance string `json:"insurance"`
	Limit     int    `json:"limit"`
}

// limit resolves the effective result cap: zero means unset (DefaultLimit),
// anything negative is floored to 1.
func (c Criteria) limit() int {
	switch {
	case c.Limit == 0:
		return DefaultLimit
	case c.Limit < 0:
		return 1
	default:
		return c.Limit
	}
}

// matches reports whether rec satisfies every supplied criterion.
func (c Criteria) matches(rec Record) bool {
	if s := strings.TrimSpace(c.State); s != "" {
		if !strings.EqualFold(rec.State, s) {
			return false
		}
	}
	if city := strings.ToLower(strings.TrimSpace(c.City)); city != "" {
		if !strings.Contains(strings.ToLower(rec.City), city) {
			return false
		}
	}
	if spec := strings.ToLower(strings.TrimSpace(c.Specialty)); spec != "" {
		if !strings.Contains(strings.ToLower(rec.Specialty), spec) {
			return false
		}
	}
	if ins := strings.TrimSpace(c.Insurance); ins != "" {
		found := false
		for _, plan := range rec.AcceptsInsurance {
			if plan == ins {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
