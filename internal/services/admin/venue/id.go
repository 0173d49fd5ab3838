package venue

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID identifies a venue. Directories may report it as a JSON string or
// number; both normalize to the same canonical string.
type ID string

// String returns the canonical identifier.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// ParseID normalizes a decoded identifier. Integral numbers format without
// exponent or fraction; fractional numbers and blank strings are rejected.
func ParseID(raw any) (ID, error) {
	switch value := raw.(type) {
	case ID:
		return ParseID(string(value))
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "", fmt.Errorf("venue id is empty")
		}
		return ID(trimmed), nil
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return ID(strconv.FormatInt(n, 10)), nil
		}
		if digits, ok := integerDigits(value.String()); ok {
			return ID(digits), nil
		}
		f, err := value.Float64()
		if err != nil {
			return "", fmt.Errorf("venue id %q is not a number", value.String())
		}
		return ParseID(f)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
			return "", fmt.Errorf("venue id %v is not an integer", value)
		}
		return ID(strconv.FormatFloat(value, 'f', -1, 64)), nil
	case int:
		return ID(strconv.Itoa(value)), nil
	case int64:
		return ID(strconv.FormatInt(value, 10)), nil
	case nil:
		return "", fmt.Errorf("venue id is missing")
	default:
		return "", fmt.Errorf("unsupported venue id type %T", raw)
	}
}

// integerDigits reports whether raw is a plain integer literal too large for
// int64, returning it without leading zeros.
func integerDigits(raw string) (string, bool) {
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}
	if raw == "" {
		return "", false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", false
		}
	}
	raw = strings.TrimLeft(raw, "0")
	if raw == "" {
		return "0", true
	}
	return sign + raw, true
}

// UnmarshalJSON accepts string and number identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Ref is the venue identity carried between wizard steps.
type Ref struct {
	ID   ID
	Name string
}
