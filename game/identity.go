package game

import "strings"

// IdentityKind selects how an identity is displayed once its tile is
// face-up.
type IdentityKind int

const (
	// IdentityGlyph renders as text.
	IdentityGlyph IdentityKind = iota
	// IdentityPicture renders as an image looked up by name in the deck.
	IdentityPicture
)

// Identity is the value shared by exactly two tiles on a board. Two tiles
// match iff their identities compare equal as values; position never plays
// a part.
type Identity struct {
	Kind  IdentityKind
	Value string
}

// Glyph builds a text identity.
func Glyph(value string) Identity {
	return Identity{Kind: IdentityGlyph, Value: value}
}

// Picture builds an image identity. The name is resolved to a drawable
// picture by the deck at render time.
func Picture(name string) Identity {
	return Identity{Kind: IdentityPicture, Value: name}
}

// picturePrefix marks picture identities in layout files; glyph values are
// stored bare.
const picturePrefix = "pic:"

func (identity Identity) String() string {
	if identity.Kind == IdentityPicture {
		return picturePrefix + identity.Value
	}
	return identity.Value
}

func identityFromString(value string) Identity {
	if name, isPicture := strings.CutPrefix(value, picturePrefix); isPicture {
		return Picture(name)
	}
	return Glyph(value)
}
