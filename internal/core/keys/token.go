package keys

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken is returned for continuation tokens that cannot be decoded
// or do not belong to the query they are presented with.
var ErrInvalidToken = errors.New("invalid continuation token")

// Cursor is the position of the last item of a page on both indexes.
type Cursor struct {
	PK  string `json:"pk"`
	SK  string `json:"sk"`
	LSI string `json:"lsi"`
}

// CursorOf returns the cursor of a stored item.
func CursorOf(a Attrs) Cursor {
	return Cursor{PK: a.PK, SK: a.SK, LSI: a.LSI}
}

// Before reports whether the item at (lsi, sk) comes after c in a
// newest-first scan.
func (c Cursor) Before(lsi, sk string) bool {
	if lsi != c.LSI {
		return lsi < c.LSI
	}
	return sk < c.SK
}

// EncodeToken turns a cursor into an opaque, URL-safe token.
func EncodeToken(c Cursor) string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeToken parses a token and checks it points into the queried range.
// An empty token decodes to the zero cursor.
func DecodeToken(token, pk, prefix string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.PK != pk || !strings.HasPrefix(c.LSI, prefix) || !strings.HasPrefix(c.SK, prefix) {
		return Cursor{}, fmt.Errorf("%w: token does not match query", ErrInvalidToken)
	}
	return c, nil
}

// IsZero reports whether c is the start-of-range cursor.
func (c Cursor) IsZero() bool {
	return c == Cursor{}
}
