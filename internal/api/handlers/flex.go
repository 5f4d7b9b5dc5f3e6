package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yoockh/jardam/internal/utils"
)

var jsonNull = []byte("null")

// FlexList decodes either a JSON array or a comma separated string. Numbers
// and booleans inside an array are kept in their JSON text form.
type FlexList []string

func (l *FlexList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*l = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = utils.ParseList(s)
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("expected a list or a comma separated string")
	}
	out := make([]string, 0, len(items))
	for _, raw := range items {
		var item string
		if err := json.Unmarshal(raw, &item); err == nil {
			out = append(out, item)
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] == '{' || raw[0] == '[' || bytes.Equal(raw, jsonNull) {
			return fmt.Errorf("unsupported list element %s", raw)
		}
		out = append(out, string(raw))
	}
	*l = utils.CleanList(out)
	return nil
}

// FlexFloat accepts a number or a numeric string. Null and blank strings
// leave it unset.
type FlexFloat struct {
	v *float64
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	f.v = nil
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	text := string(b)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		text = strings.TrimSpace(s)
		if text == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q is not a number", text)
	}
	f.v = &v
	return nil
}

func (f FlexFloat) Ptr() *float64 { return f.v }

// FlexInt is FlexFloat restricted to whole numbers.
type FlexInt struct {
	v *int
}

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	i.v = nil
	if f.v == nil {
		return nil
	}
	if *f.v != math.Trunc(*f.v) || math.Abs(*f.v) > math.MaxInt32 {
		return fmt.Errorf("%v is not a whole number", *f.v)
	}
	n := int(*f.v)
	i.v = &n
	return nil
}

func (i FlexInt) Ptr() *int { return i.v }

// FlexString keeps a JSON string as is and stores numbers by their text.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or a number")
	}
	*s = FlexString(n.String())
	return nil
}
