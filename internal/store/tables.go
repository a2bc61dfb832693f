package store

// Column keys of the raw records handed to the row mappers. SQL below
// aliases joined publisher columns so every record stays flat.
const (
	colID            = "id"
	colName          = "name"
	colTitle         = "title"
	colISBN          = "isbn"
	colYear          = "year"
	colPublisherID   = "publisher_id"
	colPublisherName = "publisher_name"
)
