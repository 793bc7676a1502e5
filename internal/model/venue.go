package model

// Venue represents a place that hosts shows.  A venue may be booked
// by many artists through the `shows` table.  Genres are kept as a
// native slice in the model; they are joined into a single delimited
// column only at the storage boundary.  This struct corresponds to a
// row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City               – city the venue is located in.
//  State              – state the venue is located in.
//  Address            – street address.
//  Phone              – contact phone in ddd-ddd-dddd format.
//  ImageLink          – URL of the venue's image.
//  FacebookLink       – URL of the venue's Facebook page.
//  Website            – URL of the venue's website.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when seeking talent.
//  Genres             – genre tags attached to the venue.
type Venue struct {
	ID                 uint64   `json:"id"`                  // venues.id
	Name               string   `json:"name"`                // venues.name
	City               string   `json:"city"`                // venues.city
	State              string   `json:"state"`               // venues.state
	Address            string   `json:"address"`             // venues.address
	Phone              string   `json:"phone"`               // venues.phone
	ImageLink          string   `json:"image_link"`          // venues.image_link
	FacebookLink       string   `json:"facebook_link"`       // venues.facebook_link
	Website            string   `json:"website"`             // venues.website
	SeekingTalent      bool     `json:"seeking_talent"`      // venues.seeking_talent
	SeekingDescription string   `json:"seeking_description"` // venues.seeking_description
	Genres             []string `json:"genres"`              // venues.genres (comma-joined column)
}
