package entity

// Author is a catalog author. The zero ID marks an author that has not
// been persisted yet; the storage layer assigns the real id on create.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
