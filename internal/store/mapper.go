package store

import (
	"catalogapi/internal/entity"
)

// The row mappers translate the loosely-typed records returned by the
// database collaborator into domain values. A record that is missing a
// required field, or carries it with an unexpected runtime type, maps
// to nil; callers log and skip such rows instead of failing the call.

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AuthorFromRow maps a raw author record, or returns nil when the
// record does not have the expected shape.
func AuthorFromRow(row map[string]any) *entity.Author {
	id, okID := intValue(row[colID])
	name, okName := stringValue(row[colName])
	if !okID || !okName {
		return nil
	}
	return &entity.Author{ID: id, Name: name}
}

// PublisherFromRow maps a raw publisher record, or returns nil when the
// record does not have the expected shape.
func PublisherFromRow(row map[string]any) *entity.Publisher {
	id, okID := intValue(row[colID])
	name, okName := stringValue(row[colName])
	if !okID || !okName {
		return nil
	}
	return &entity.Publisher{ID: id, Name: name}
}

// BookFromRow maps a raw book record. The publisher sub-record must
// already be mapped and the author list is fetched separately through
// the join table; a nil publisher or an empty author list makes the
// whole book unmappable.
func BookFromRow(row map[string]any, publisher *entity.Publisher, authors []entity.Author) *entity.Book {
	id, okID := intValue(row[colID])
	title, okTitle := stringValue(row[colTitle])
	isbn, okISBN := stringValue(row[colISBN])
	year, okYear := intValue(row[colYear])
	if !okID || !okTitle || !okISBN || !okYear {
		return nil
	}
	if publisher == nil || len(authors) == 0 {
		return nil
	}
	return &entity.Book{
		ID:        id,
		Title:     title,
		ISBN:      isbn,
		Year:      year,
		Authors:   authors,
		Publisher: *publisher,
	}
}

// publisherSubRow extracts the aliased publisher columns of a joined
// book record into a standalone publisher record.
func publisherSubRow(row map[string]any) map[string]any {
	return map[string]any{
		colID:   row[colPublisherID],
		colName: row[colPublisherName],
	}
}
