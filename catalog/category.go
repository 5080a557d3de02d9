package catalog

import (
	"fmt"
	"strings"
)

// Category is one of the fixed listing buckets. Declaration order is display order.
type Category int

const (
	// Popular lists the movies trending right now
	Popular Category = iota
	// TopRated lists the highest rated movies
	TopRated
	// Upcoming lists movies about to be released
	Upcoming
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{Popular, TopRated, Upcoming}
}

// PathSegment returns the API path segment under /movie/
func (c Category) PathSegment() string {
	switch c {
	case Popular:
		return "popular"
	case TopRated:
		return "top_rated"
	case Upcoming:
		return "upcoming"
	default:
		return ""
	}
}

// Label returns the section heading shown to users
func (c Category) Label() string {
	switch c {
	case Popular:
		return "Popular Movies Right Now"
	case TopRated:
		return "Top Rated Movies"
	case Upcoming:
		return "Coming Soon"
	default:
		return "Unknown"
	}
}

// String returns the path segment, or "unknown"
func (c Category) String() string {
	if s := c.PathSegment(); s != "" {
		return s
	}
	return "unknown"
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool {
	return c >= Popular && c <= Upcoming
}

// ParseCategory accepts a path segment, case-insensitively, with '-' in place of '_'
func ParseCategory(s string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range Categories() {
		if c.PathSegment() == normalized {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q (must be popular, top_rated or upcoming)", s)
}
