package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleString accepts either a JSON string or a JSON number. The website
// form sends "7 days" while scripted clients send 7.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleString(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleString(n.String())
	return nil
}

func (f FlexibleString) String() string { return string(f) }
