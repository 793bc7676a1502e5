package repository

import "strings"

// likePattern builds the argument for a LOWER(name) LIKE ? predicate.
// Substring match, no tokenization; an empty term yields "%%" which
// matches every row.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
