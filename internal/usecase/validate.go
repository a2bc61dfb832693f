package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"catalogapi/internal/errs"

	"github.com/rs/zerolog"
)

// Field validators take their input as any because the request bodies
// arrive as loosely-typed JSON; checking the runtime type is part of
// the validation itself. Each returns the cleaned value.

const maxTextLength = 150

const minBookYear = 1500

// Three digits, a hyphen, ten digits: 14 characters total.
var isbnPattern = regexp.MustCompile(`^[0-9]{3}-[0-9]{10}$`)

// intParam accepts the integer representations a JSON body or a Go
// caller can produce. Whole-valued floats count; 2015.5 does not.
func intParam(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// validateText implements the shared text rules: must be a string,
// non-empty after trimming, and at most maxTextLength characters.
// The field name only shows up in the error messages.
func validateText(raw any, invalidType, empty, tooLong string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", errs.Validationf("%s", invalidType)
	}
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", errs.Validationf("%s", empty)
	}
	if utf8.RuneCountInString(cleaned) > maxTextLength {
		return "", errs.Validationf("%s", tooLong)
	}
	return cleaned, nil
}

// ValidateBookTitle checks and cleans a raw book title.
type ValidateBookTitle struct {
	log zerolog.Logger
}

func NewValidateBookTitle(log zerolog.Logger) *ValidateBookTitle {
	return &ValidateBookTitle{log: log.With().Str("component", "ValidateBookTitle").Logger()}
}

func (v *ValidateBookTitle) Execute(_ context.Context, raw any) (string, error) {
	title, err := validateText(raw, "Invalid book title type", "Empty book title", "Book title is longer than expected")
	if err != nil {
		v.log.Error().Err(err).Interface("raw", raw).Msg("book title rejected")
		return "", err
	}
	return title, nil
}

// ValidateBookISBN checks a raw ISBN against the NNN-NNNNNNNNNN format.
type ValidateBookISBN struct {
	log zerolog.Logger
}

func NewValidateBookISBN(log zerolog.Logger) *ValidateBookISBN {
	return &ValidateBookISBN{log: log.With().Str("component", "ValidateBookISBN").Logger()}
}

func (v *ValidateBookISBN) Execute(_ context.Context, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		v.log.Error().Interface("raw", raw).Msg("book isbn rejected")
		return "", errs.Validationf("Invalid book ISBN type")
	}
	isbn := strings.TrimSpace(s)
	var err error
	switch {
	case isbn == "":
		err = errs.Validationf("Empty book ISBN")
	case !isbnPattern.MatchString(isbn):
		err = errs.Validationf("Book ISBN format is invalid.")
	}
	if err != nil {
		v.log.Error().Err(err).Str("isbn", isbn).Msg("book isbn rejected")
		return "", err
	}
	return isbn, nil
}

// ValidateBookYear checks a raw publication year. The accepted range is
// [1500, current calendar year].
type ValidateBookYear struct {
	log zerolog.Logger
}

func NewValidateBookYear(log zerolog.Logger) *ValidateBookYear {
	return &ValidateBookYear{log: log.With().Str("component", "ValidateBookYear").Logger()}
}

func (v *ValidateBookYear) Execute(_ context.Context, raw any) (int, error) {
	year, ok := intParam(raw)
	if !ok {
		v.log.Error().Interface("raw", raw).Msg("book year rejected")
		return 0, errs.Validationf("Invalid book year type")
	}
	if year < minBookYear || year > time.Now().Year() {
		v.log.Error().Int("year", year).Msg("book year rejected")
		return 0, errs.Validationf("Invalid book year value")
	}
	return year, nil
}

// ValidateAuthorName checks and cleans a raw author name.
type ValidateAuthorName struct {
	log zerolog.Logger
}

func NewValidateAuthorName(log zerolog.Logger) *ValidateAuthorName {
	return &ValidateAuthorName{log: log.With().Str("component", "ValidateAuthorName").Logger()}
}

func (v *ValidateAuthorName) Execute(_ context.Context, raw any) (string, error) {
	name, err := validateText(raw, "Invalid author name type", "Empty author name", "Author name is longer than expected")
	if err != nil {
		v.log.Error().Err(err).Interface("raw", raw).Msg("author name rejected")
		return "", err
	}
	return name, nil
}

// ValidatePublisherName checks and cleans a raw publisher name.
type ValidatePublisherName struct {
	log zerolog.Logger
}

func NewValidatePublisherName(log zerolog.Logger) *ValidatePublisherName {
	return &ValidatePublisherName{log: log.With().Str("component", "ValidatePublisherName").Logger()}
}

func (v *ValidatePublisherName) Execute(_ context.Context, raw any) (string, error) {
	name, err := validateText(raw, "Invalid publisher name type", "Empty publisher name", "Publisher name is longer than expected")
	if err != nil {
		v.log.Error().Err(err).Interface("raw", raw).Msg("publisher name rejected")
		return "", err
	}
	return name, nil
}

// ValidateAuthorsNames validates a non-empty sequence of raw author
// names. Element failures carry the failing index; a value that is not
// a non-empty sequence at all fails with its own message.
type ValidateAuthorsNames struct {
	validateName *ValidateAuthorName
	log          zerolog.Logger
}

func NewValidateAuthorsNames(validateName *ValidateAuthorName, log zerolog.Logger) *ValidateAuthorsNames {
	return &ValidateAuthorsNames{
		validateName: validateName,
		log:          log.With().Str("component", "ValidateAuthorsNames").Logger(),
	}
}

func (v *ValidateAuthorsNames) Execute(ctx context.Context, raw any) ([]string, error) {
	var elems []any
	switch vals := raw.(type) {
	case []any:
		elems = vals
	case []string:
		elems = make([]any, len(vals))
		for i, s := range vals {
			elems[i] = s
		}
	default:
		v.log.Error().Interface("raw", raw).Msg("authors names rejected")
		return nil, errs.Validationf("Invalid authors names type. An array is expected.")
	}
	if len(elems) == 0 {
		v.log.Error().Msg("authors names rejected: empty")
		return nil, errs.Validationf("Authors names not provided")
	}

	names := make([]string, 0, len(elems))
	for i, elem := range elems {
		name, err := v.validateName.Execute(ctx, elem)
		if err != nil {
			v.log.Error().Err(err).Int("index", i).Msg("authors names rejected")
			return nil, errs.Validationf("%s at index %d", err.Error(), i)
		}
		names = append(names, name)
	}
	return names, nil
}

var (
	_ UseCase[any, string]   = (*ValidateBookTitle)(nil)
	_ UseCase[any, string]   = (*ValidateBookISBN)(nil)
	_ UseCase[any, int]      = (*ValidateBookYear)(nil)
	_ UseCase[any, string]   = (*ValidateAuthorName)(nil)
	_ UseCase[any, string]   = (*ValidatePublisherName)(nil)
	_ UseCase[any, []string] = (*ValidateAuthorsNames)(nil)
)
