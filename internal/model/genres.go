package model

import "strings"

// genreDelimiter separates genre tags in the single storage column.
// Tags themselves must never contain the delimiter or the join/split
// round trip corrupts the list.
const genreDelimiter = ","

// JoinGenres serializes a genre list into the delimited column value.
func JoinGenres(genres []string) string {
	return strings.Join(genres, genreDelimiter)
}

// SplitGenres parses the delimited column value back into a genre
// list.  An empty column yields an empty (non-nil) slice rather than
// a slice holding one empty string.
func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, genreDelimiter)
}
