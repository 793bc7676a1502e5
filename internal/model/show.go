package model

import "time"

// Show represents a scheduled event joining one venue and one artist
// at a start time.  It is the join entity behind the many-to-many
// venue/artist relationship; start_time is the edge data.  Shows are
// created once and never edited or deleted directly; deleting a
// venue removes its shows through the repository's cascade.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue hosting the show.
//  ArtistID  – artist performing at the show.
//  StartTime – when the show begins.
type Show struct {
	ID        uint64    `json:"id"`         // shows.id
	VenueID   uint64    `json:"venue_id"`   // shows.venue_id
	ArtistID  uint64    `json:"artist_id"`  // shows.artist_id
	StartTime time.Time `json:"start_time"` // shows.start_time
}
