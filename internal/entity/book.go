package entity

// Book is a catalog book. A book always references exactly one publisher
// and at least one author; rows that cannot satisfy that are dropped by
// the mapping layer instead of surfacing half-built values.
type Book struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	ISBN      string    `json:"isbn"`
	Year      int       `json:"year"`
	Authors   []Author  `json:"authors"`
	Publisher Publisher `json:"publisher"`
}
