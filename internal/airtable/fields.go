package airtable

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Fields is the field map of a record, keyed by the column's display name.
// Values decode from JSON, so numbers arrive as float64.
type Fields map[string]any

func (f Fields) String(name string) string {
	switch v := f[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func (f Fields) Int(name string) int {
	switch v := f[name].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

func (f Fields) Bool(name string) bool {
	v, _ := f[name].(bool)
	return v
}

// Strings returns a multi-value field such as a link or multiple select.
func (f Fields) Strings(name string) []string {
	raw, ok := f[name].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Link returns the first id of a link field.
func (f Fields) Link(name string) string {
	if ids := f.Strings(name); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// Time parses a timestamp or date field. Unparseable values are zero.
func (f Fields) Time(name string) time.Time {
	s := f.String(name)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// JSON unmarshals a long-text field holding a JSON document into dst.
// An empty field leaves dst untouched.
func (f Fields) JSON(name string, dst any) error {
	s := strings.TrimSpace(f.String(name))
	if s == "" {
		return nil
	}
	return json.Unmarshal([]byte(s), dst)
}

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// The Put helpers implement partial writes: a nil pointer leaves the field
// out of the payload, a pointer to the zero value writes an explicit clear.

func (f Fields) PutString(name string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		f[name] = nil
		return
	}
	f[name] = *v
}

func (f Fields) PutInt(name string, v *int) {
	if v == nil {
		return
	}
	f[name] = *v
}

// PutLink writes a single-record link field. "" unlinks.
func (f Fields) PutLink(name string, id *string) {
	if id == nil {
		return
	}
	if *id == "" {
		f[name] = []string{}
		return
	}
	f[name] = []string{*id}
}

// PutLinks writes a multi-record link field. An empty slice unlinks all.
func (f Fields) PutLinks(name string, ids *[]string) {
	if ids == nil {
		return
	}
	out := make([]string, 0, len(*ids))
	for _, id := range *ids {
		if id != "" {
			out = append(out, id)
		}
	}
	f[name] = out
}

// SetIf writes v only when it is non-empty. Used by creates, where an
// absent optional field must not be sent at all.
func (f Fields) SetIf(name, v string) {
	if v != "" {
		f[name] = v
	}
}
