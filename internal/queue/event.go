// Package queue defines message payloads exchanged over the message broker.
package queue

// ListingCreatedEvent is published when a venue, artist or show is
// successfully listed.  It carries enough information for downstream
// consumers to log or trigger notifications without querying the
// primary database.  Venue and artist events fill Name/City/State;
// show events fill VenueID/ArtistID/StartTime instead.
type ListingCreatedEvent struct {
	Kind      string `json:"kind"` // "venue", "artist" or "show"
	ID        uint64 `json:"id"`
	Name      string `json:"name,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	VenueID   uint64 `json:"venue_id,omitempty"`
	ArtistID  uint64 `json:"artist_id,omitempty"`
	StartTime string `json:"start_time,omitempty"`
}
