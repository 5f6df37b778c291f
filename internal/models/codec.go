package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// codecVersion prefixes every value the column codec writes.
const codecVersion = "v1:"

// CodecError reports a column value that is not a well-formed encoding of the
// expected type, or an enum value that has no encoding.
type CodecError struct {
	Input  string
	Reason string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec: %s (input %q)", e.Reason, e.Input)
}

func codecErrorf(input, format string, args ...any) *CodecError {
	return &CodecError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// EncodeRestrictions renders a restriction list as v1:[Tag,Tag].
func EncodeRestrictions(list []DietaryRestriction) (string, error) {
	var b strings.Builder
	b.WriteString(codecVersion)
	b.WriteByte('[')
	for i, r := range list {
		if !r.Valid() {
			return "", codecErrorf(string(r), "unknown dietary restriction at position %d", i)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(r))
	}
	b.WriteByte(']')
	return b.String(), nil
}

// DecodeRestrictions parses a v1 list or the legacy JSON array layout. The
// result is never nil.
func DecodeRestrictions(text string) ([]DietaryRestriction, error) {
	if strings.HasPrefix(text, "[") {
		return decodeLegacyRestrictions(text)
	}
	body, ok := strings.CutPrefix(text, codecVersion)
	if !ok {
		return nil, codecErrorf(text, "missing or unknown version prefix")
	}
	if len(body) < 2 || body[0] != '[' || body[len(body)-1] != ']' {
		return nil, codecErrorf(text, "restriction list must be bracketed")
	}
	inner := body[1 : len(body)-1]
	out := []DietaryRestriction{}
	if inner == "" {
		return out, nil
	}
	for i, tag := range strings.Split(inner, ",") {
		r := DietaryRestriction(tag)
		if !r.Valid() {
			return nil, codecErrorf(text, "unknown dietary restriction %q at position %d", tag, i)
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeLegacyRestrictions(text string) ([]DietaryRestriction, error) {
	var tags []string
	if err := json.Unmarshal([]byte(text), &tags); err != nil {
		return nil, codecErrorf(text, "malformed legacy restriction list: %v", err)
	}
	out := make([]DietaryRestriction, 0, len(tags))
	for i, tag := range tags {
		r := DietaryRestriction(tag)
		if !r.Valid() {
			return nil, codecErrorf(text, "unknown dietary restriction %q at position %d", tag, i)
		}
		out = append(out, r)
	}
	return out, nil
}

// EncodeCategory renders a category as v1:Tag.
func EncodeCategory(c DishCategory) (string, error) {
	if !c.Valid() {
		return "", codecErrorf(string(c), "unknown dish category")
	}
	return codecVersion + string(c), nil
}

// DecodeCategory parses a v1 scalar or the legacy JSON string layout.
func DecodeCategory(text string) (DishCategory, error) {
	var tag string
	switch {
	case strings.HasPrefix(text, `"`):
		if err := json.Unmarshal([]byte(text), &tag); err != nil {
			return "", codecErrorf(text, "malformed legacy category: %v", err)
		}
	case strings.HasPrefix(text, codecVersion):
		tag = strings.TrimPrefix(text, codecVersion)
	default:
		return "", codecErrorf(text, "missing or unknown version prefix")
	}
	c := DishCategory(tag)
	if !c.Valid() {
		return "", codecErrorf(text, "unknown dish category %q", tag)
	}
	return c, nil
}

func columnText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", codecErrorf("", "unexpected NULL")
	default:
		return "", codecErrorf(fmt.Sprint(v), "unsupported column type %T", v)
	}
}

// GormDataType stores the list in a text column.
func (DietaryRestrictions) GormDataType() string { return "text" }

// Value implements driver.Valuer.
func (l DietaryRestrictions) Value() (driver.Value, error) {
	return EncodeRestrictions(l)
}

// Scan implements sql.Scanner.
func (l *DietaryRestrictions) Scan(src any) error {
	text, err := columnText(src)
	if err != nil {
		return err
	}
	decoded, err := DecodeRestrictions(text)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

// GormDataType stores the category in a text column.
func (DishCategory) GormDataType() string { return "text" }

// Value implements driver.Valuer.
func (c DishCategory) Value() (driver.Value, error) {
	return EncodeCategory(c)
}

// Scan implements sql.Scanner.
func (c *DishCategory) Scan(src any) error {
	text, err := columnText(src)
	if err != nil {
		return err
	}
	decoded, err := DecodeCategory(text)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}
