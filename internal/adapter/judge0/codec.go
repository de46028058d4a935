package judge0

import (
	"encoding/base64"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode converts text into the backend's base64 transport form.
func Encode(s string) string {
	if s == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode reverses Encode. The backend wraps long payloads with line breaks,
// which are dropped before decoding.
func Decode(s string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrEncoding, err)
	}
	return string(raw), nil
}

// decodeField decodes an optional field; absent decodes to empty.
func decodeField(name string, s *string) (string, error) {
	if s == nil {
		return "", nil
	}
	out, err := Decode(*s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// flexString accepts a JSON string, number or null. The backend reports
// elapsed time as either form depending on version.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}
