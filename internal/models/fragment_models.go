package models

import "time"

// Fragment is one unit of subject text: a social post or a manually entered
// statement. The ID is opaque and caller-supplied; the engine never parses it
// and never mutates a fragment.
type Fragment struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}
