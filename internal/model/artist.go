package model

// Artist represents a performer who can be booked at shows.  Artists
// relate to venues through the `shows` table.  Like Venue, the genre
// tags live in the model as a slice and are serialized to one
// delimited column when persisted.  This struct corresponds to a row
// in the `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist.
//  City               – home city.
//  State              – home state.
//  Phone              – contact phone in ddd-ddd-dddd format.
//  ImageLink          – URL of the artist's image.
//  FacebookLink       – URL of the artist's Facebook page.
//  Website            – URL of the artist's website.
//  SeekingVenue       – whether the artist is looking for venues.
//  SeekingDescription – free text shown when seeking a venue.
//  Genres             – genre tags attached to the artist.
type Artist struct {
	ID                 uint64   `json:"id"`                  // artists.id
	Name               string   `json:"name"`                // artists.name
	City               string   `json:"city"`                // artists.city
	State              string   `json:"state"`               // artists.state
	Phone              string   `json:"phone"`               // artists.phone
	ImageLink          string   `json:"image_link"`          // artists.image_link
	FacebookLink       string   `json:"facebook_link"`       // artists.facebook_link
	Website            string   `json:"website"`             // artists.website
	SeekingVenue       bool     `json:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string   `json:"seeking_description"` // artists.seeking_description
	Genres             []string `json:"genres"`              // artists.genres (comma-joined column)
}
