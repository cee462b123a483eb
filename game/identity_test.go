package game

import "testing"

func TestIdentityStringRoundTrip(t *testing.T) {
	tests := []struct {
		identity Identity
		want     string
	}{
		{identity: Glyph("A"), want: "A"},
		{identity: Glyph("apple"), want: "apple"},
		{identity: Picture("cat"), want: "pic:cat"},
	}

	for _, tt := range tests {
		if got := tt.identity.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := identityFromString(tt.want); got != tt.identity {
			t.Errorf("identityFromString(%q) = %#v, want %#v", tt.want, got, tt.identity)
		}
	}
}
