package request

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString accepts a JSON string or number and keeps its text. Form inputs
// send money either way; parsing happens later, leniently.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		var v bool
		if errBool := json.Unmarshal(b, &v); errBool == nil {
			*f = FlexString(strconv.FormatBool(v))
			return nil
		}
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f *FlexString) Ptr() *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}
