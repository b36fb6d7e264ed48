package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Scalar is a JSON scalar kept in the exact textual form the operator or the
// print service produced. It decodes from strings and from bare numbers, so
// "1,29" and 1.29 both survive a round trip untouched; null decodes to "".
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	*s = Scalar(data)
	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s Scalar) String() string {
	return string(s)
}

// Blank reports whether s holds only whitespace.
func (s Scalar) Blank() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Present reports whether a value was entered at all. Whitespace counts as
// present; only the empty string does not.
func (s Scalar) Present() bool {
	return s != ""
}

// Trimmed returns s without surrounding whitespace.
func (s Scalar) Trimmed() string {
	return strings.TrimSpace(string(s))
}
