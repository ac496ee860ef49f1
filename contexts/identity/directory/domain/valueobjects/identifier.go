package valueobjects

import (
	"regexp"
	"strconv"
	"strings"
)

// IdentifierKind is the resolved lookup route for a caller-supplied
// identifier.
type IdentifierKind string

const (
	ByID       IdentifierKind = "id"
	ByPhone    IdentifierKind = "phone"
	ByEmail    IdentifierKind = "email"
	ByUsername IdentifierKind = "username"
)

// Identifier is the tagged classification of a caller-supplied identifier.
// Classification is pure and total; query execution happens elsewhere.
type Identifier struct {
	Kind IdentifierKind

	// UserID is set for ByID. A zero value means the digits did not fit a
	// user ID; no row will ever match it.
	UserID int64

	// Value holds the normalized lookup value for the other kinds: E.164
	// phone, lowercased email, or username.
	Value string
}

var numericID = regexp.MustCompile(`^\d{12,}$`)

// ClassifyIdentifier applies the public precedence contract:
//
//  1. twelve or more decimal digits -> user-ID lookup
//  2. leading '+'                   -> E.164 phone lookup
//  3. contains '@'                  -> lowercase-normalized e-mail lookup
//  4. otherwise                     -> username lookup
//
// Exactly one branch applies for any input. The ordering matters for
// ambiguous values such as a fully numeric username.
func ClassifyIdentifier(raw string) Identifier {
	switch {
	case numericID.MatchString(raw):
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			id = 0
		}
		return Identifier{Kind: ByID, UserID: id}
	case strings.HasPrefix(raw, "+"):
		return Identifier{Kind: ByPhone, Value: raw}
	case strings.Contains(raw, "@"):
		return Identifier{Kind: ByEmail, Value: strings.ToLower(raw)}
	default:
		return Identifier{Kind: ByUsername, Value: raw}
	}
}

// IdentifierForID classifies an already-numeric-typed value.
func IdentifierForID(id int64) Identifier {
	return Identifier{Kind: ByID, UserID: id}
}
