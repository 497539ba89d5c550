// Package codec translates enum fields between the internal lower_snake_case
// values and the display strings stored in the record store.
package codec

import (
	"fmt"
	"strings"
)

// Table is the bidirectional mapping for one enum-valued field.
type Table[T ~string] struct {
	field    string
	fallback T
	toLabel  map[T]string
	fromText map[string]T
	members  []T
}

// NewTable builds a table and panics unless labels covers exactly members
// with distinct display strings. fallback must be a member.
func NewTable[T ~string](field string, members []T, labels map[T]string, fallback T) *Table[T] {
	if len(labels) != len(members) {
		panic(fmt.Sprintf("codec %s: %d labels for %d members", field, len(labels), len(members)))
	}
	t := &Table[T]{
		field:    field,
		fallback: fallback,
		toLabel:  make(map[T]string, len(members)),
		fromText: make(map[string]T, 2*len(members)),
		members:  members,
	}
	for _, m := range members {
		label, ok := labels[m]
		if !ok || label == "" {
			panic(fmt.Sprintf("codec %s: no label for %q", field, m))
		}
		key := normalize(label)
		if _, dup := t.fromText[key]; dup {
			panic(fmt.Sprintf("codec %s: duplicate label %q", field, label))
		}
		t.toLabel[m] = label
		t.fromText[key] = m
	}
	for _, m := range members {
		// rows written with the raw internal value still decode
		if _, taken := t.fromText[normalize(string(m))]; !taken {
			t.fromText[normalize(string(m))] = m
		}
	}
	if _, ok := t.toLabel[fallback]; !ok {
		panic(fmt.Sprintf("codec %s: fallback %q is not a member", field, fallback))
	}
	return t
}

func (t *Table[T]) Field() string { return t.field }

func (t *Table[T]) Default() T { return t.fallback }

func (t *Table[T]) Members() []T { return t.members }

// Encode returns the display string for v. An unknown v is a programming
// error and panics.
func (t *Table[T]) Encode(v T) string {
	label, ok := t.toLabel[v]
	if !ok {
		panic(fmt.Sprintf("codec %s: cannot encode unknown value %q", t.field, v))
	}
	return label
}

// Decode maps a stored string back to its member. Empty, missing or
// unrecognised strings decode to the field's default.
func (t *Table[T]) Decode(s string) T {
	v, _ := t.Lookup(s)
	return v
}

// Lookup is Decode that also reports whether s matched a member.
func (t *Table[T]) Lookup(s string) (T, bool) {
	if v, ok := t.fromText[normalize(s)]; ok {
		return v, true
	}
	return t.fallback, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
