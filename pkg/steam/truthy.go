package steam

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// truthy decodes upstream "success" fields, which arrive as booleans on some
// endpoints and as numbers on others. Strings are read as a boolean or a
// number when they parse as one. Zero, false, "", "0", "false" and null are
// false.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = false
	case bytes.Equal(data, []byte("true")):
		*t = true
	case bytes.Equal(data, []byte("false")):
		*t = false
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = truthyString(s)
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*t = n != 0
	}

	return nil
}

func truthyString(s string) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0
	}

	return s != ""
}
