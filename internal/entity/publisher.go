package entity

// Publisher is a catalog publisher.
type Publisher struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
