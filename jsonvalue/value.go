// Package jsonvalue implements the JSON value tree, UTF-8 codec, parser
// and formatter described as components C1-C4: a strict, order-
// preserving JSON core with explicit duplicate-key policy and exact
// UTF-8/UTF-16 escape handling. It has no knowledge of JSON Schema;
// package jsonschema is built on top of it.
package jsonvalue

import (
	"fmt"
	"iter"
	"sort"
)

// Kind is the discriminant of a Value's payload. Exactly one of the
// seven kinds is active at any time; transitions only happen through
// constructors (spec §3.1 invariant 1).
type Kind int

const (
	Object Kind = iota
	Array
	Integer
	Real
	String
	Boolean
	Null
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// SortMode tracks how an object's members are currently ordered, so
// that an operation violating the mode resets it to Unsorted (spec
// §3.1 invariant 3).
type SortMode int

const (
	Unsorted SortMode = iota
	ByInsertionIndex
	ByKey
	ByKeyValue
)

// member is a single (key, value) pair plus its insertion order.
type member struct {
	key           *Value
	value         *Value
	originalIndex int
}

// Value is a JSON value: one of seven kinds, with ownership of its
// sub-values (no sharing, no cycles; spec §3.1 invariant 5).
type Value struct {
	kind Kind

	// Object payload.
	members  []member
	sortMode SortMode

	// Array payload.
	elements []*Value

	// Scalar payloads.
	integer int64
	real    float64
	str     []byte
	boolean bool
}

// NewObject returns a new, empty object value.
func NewObject() *Value {
	return &Value{kind: Object, sortMode: ByInsertionIndex}
}

// NewArray returns a new, empty array value.
func NewArray() *Value {
	return &Value{kind: Array}
}

// NewInteger returns a new integer value.
func NewInteger(i int64) *Value {
	return &Value{kind: Integer, integer: i}
}

// NewReal returns a new real (binary64) value.
func NewReal(r float64) *Value {
	return &Value{kind: Real, real: r}
}

// NewString returns a new string value. The bytes are copied; they may
// contain embedded NUL and are not required to be valid UTF-8 (spec
// §3.1: "NUL-safe").
func NewString(b []byte) *Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Value{kind: String, str: cp}
}

// NewStringFromString is a convenience wrapper around NewString for Go
// string literals.
func NewStringFromString(s string) *Value {
	return NewString([]byte(s))
}

// Stringf builds a string value from a format string, mirroring
// json_string_new_printf from the C ancestor of this package.
func Stringf(format string, args ...any) *Value {
	return NewStringFromString(fmt.Sprintf(format, args...))
}

// NewBoolean returns a new boolean value.
func NewBoolean(b bool) *Value {
	return &Value{kind: Boolean, boolean: b}
}

// NewNull returns a new null value.
func NewNull() *Value {
	return &Value{kind: Null}
}

// Kind returns the value's discriminant.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsObject() bool  { return v.kind == Object }
func (v *Value) IsArray() bool   { return v.kind == Array }
func (v *Value) IsInteger() bool { return v.kind == Integer }
func (v *Value) IsReal() bool    { return v.kind == Real }
func (v *Value) IsNumber() bool  { return v.kind == Integer || v.kind == Real }
func (v *Value) IsString() bool  { return v.kind == String }
func (v *Value) IsBoolean() bool { return v.kind == Boolean }
func (v *Value) IsNull() bool    { return v.kind == Null }

// IntegerValue returns the integer payload. Calling it on a non-Integer
// value is a programming error: it panics rather than silently
// returning zero (spec §4.2: "implementations MAY assert").
func (v *Value) IntegerValue() int64 {
	if v.kind != Integer {
		panic("jsonvalue: IntegerValue on non-integer value")
	}
	return v.integer
}

// RealValue returns the real payload.
func (v *Value) RealValue() float64 {
	if v.kind != Real {
		panic("jsonvalue: RealValue on non-real value")
	}
	return v.real
}

// NumberValue returns a Real- or Integer-kinded value promoted to
// float64, for callers that only care about the numeric magnitude.
func (v *Value) NumberValue() float64 {
	switch v.kind {
	case Integer:
		return float64(v.integer)
	case Real:
		return v.real
	default:
		panic("jsonvalue: NumberValue on non-numeric value")
	}
}

// StringBytes returns the raw bytes of a String value. The length of
// the returned slice is authoritative; callers must never look for a
// NUL terminator (spec §3.1 invariant 2). The returned slice must not
// be mutated by the caller.
func (v *Value) StringBytes() []byte {
	if v.kind != String {
		panic("jsonvalue: StringBytes on non-string value")
	}
	return v.str
}

// StringValue returns the String payload converted to a Go string.
func (v *Value) StringValue() string {
	return string(v.StringBytes())
}

// BooleanValue returns the boolean payload.
func (v *Value) BooleanValue() bool {
	if v.kind != Boolean {
		panic("jsonvalue: BooleanValue on non-boolean value")
	}
	return v.boolean
}

// Clone returns a deep, fully independent copy of v, preserving member
// order and original indices (spec §3.1 invariant 5, §4.2).
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}

	switch v.kind {
	case Object:
		out := &Value{kind: Object, sortMode: v.sortMode}
		out.members = make([]member, len(v.members))
		for i, m := range v.members {
			out.members[i] = member{
				key:           m.key.Clone(),
				value:         m.value.Clone(),
				originalIndex: m.originalIndex,
			}
		}
		return out
	case Array:
		out := &Value{kind: Array}
		out.elements = make([]*Value, len(v.elements))
		for i, e := range v.elements {
			out.elements[i] = e.Clone()
		}
		return out
	case String:
		return NewString(v.str)
	default:
		cp := *v
		return &cp
	}
}

// Equal reports structural equality: kinds must match exactly (an
// Integer never equals a Real, spec §4.2), Array equality is
// positional, Object equality is multiset equality over (key, value)
// pairs computed by sorting both sides ByKeyValue and comparing
// position by position (spec §4.2, resolving the Open Question in
// §9 about the buggy C comparator).
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case Object:
		if len(a.members) != len(b.members) {
			return false
		}
		sa := a.Clone()
		sb := b.Clone()
		sa.SortBy(ByKeyValue)
		sb.SortBy(ByKeyValue)
		for i := range sa.members {
			if !Equal(sa.members[i].key, sb.members[i].key) {
				return false
			}
			if !Equal(sa.members[i].value, sb.members[i].value) {
				return false
			}
		}
		return true
	case Array:
		if len(a.elements) != len(b.elements) {
			return false
		}
		for i := range a.elements {
			if !Equal(a.elements[i], b.elements[i]) {
				return false
			}
		}
		return true
	case Integer:
		return a.integer == b.integer
	case Real:
		return a.real == b.real
	case String:
		return string(a.str) == string(b.str)
	case Boolean:
		return a.boolean == b.boolean
	case Null:
		return true
	default:
		return false
	}
}

// Equal is the method form of Equal, for fluent call sites.
func (v *Value) Equal(other *Value) bool { return Equal(v, other) }

// --- Object operations ---

// NbMembers returns the number of members in an object.
func (v *Value) NbMembers() int {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	return len(v.members)
}

// HasMember reports whether any member has the given key.
func (v *Value) HasMember(key string) bool {
	_, ok := v.Member(key)
	return ok
}

// Member returns the value of the first member matching key, and
// whether it was found (spec §4.2: "returns the first match on
// duplicate keys").
func (v *Value) Member(key string) (*Value, bool) {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	for _, m := range v.members {
		if m.key.StringValue() == key {
			return m.value, true
		}
	}
	return nil, false
}

// NthMember returns the key and value of the nth member in current
// order.
func (v *Value) NthMember(i int) (key, value *Value, err error) {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	if i < 0 || i >= len(v.members) {
		return nil, nil, ErrIndexOutOfRange
	}
	return v.members[i].key, v.members[i].value, nil
}

// AddMember appends a new member, unconditionally, even if key
// duplicates an existing member (the data model permits duplicate
// keys; see spec §3.1 and §4.3). originalIndex is NbMembers()-1 after
// the append.
func (v *Value) AddMember(key string, value *Value) {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	v.members = append(v.members, member{
		key:           NewStringFromString(key),
		value:         value,
		originalIndex: len(v.members),
	})
	if v.sortMode != Unsorted && v.sortMode != ByInsertionIndex {
		v.sortMode = Unsorted
	}
}

// SetMember replaces the value of the first member matching key, or
// appends a new member if none matches. It reports whether a member
// was added (true) or an existing one replaced (false).
func (v *Value) SetMember(key string, value *Value) (added bool) {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	for i := range v.members {
		if v.members[i].key.StringValue() == key {
			v.members[i].value = value
			return false
		}
	}
	v.AddMember(key, value)
	return true
}

// RemoveMember removes all members matching key, renumbering the
// originalIndex of remaining members so that the set of indices stays
// a contiguous [0, n) (spec §3.1 invariant 4). Returns the number of
// members removed.
func (v *Value) RemoveMember(key string) int {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	kept := v.members[:0]
	removed := 0
	for _, m := range v.members {
		if m.key.StringValue() == key {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	v.members = kept
	v.renumber()
	if removed > 0 && v.sortMode != Unsorted && v.sortMode != ByInsertionIndex {
		v.sortMode = Unsorted
	}
	return removed
}

// renumber reassigns originalIndex values to be dense over [0, n) while
// keeping their relative order, used after removal so the
// ByInsertionIndex sort stays total and stable even when the members
// are currently in another order (spec §9, "small-vector optimization"
// note).
func (v *Value) renumber() {
	order := make([]int, len(v.members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return v.members[order[a]].originalIndex < v.members[order[b]].originalIndex
	})
	for rank, i := range order {
		v.members[i].originalIndex = rank
	}
}

// Members returns an iterator over (key, value) pairs in current
// order, the idiomatic counterpart to the C ancestor's
// json_object_iterate/json_object_iterator_get_next pair.
func (v *Value) Members() iter.Seq2[*Value, *Value] {
	if v.kind != Object {
		panic(ErrNotObject)
	}
	return func(yield func(*Value, *Value) bool) {
		for _, m := range v.members {
			if !yield(m.key, m.value) {
				return
			}
		}
	}
}

// Merge copies every member of src into dst in insertion order, calling
// SetMember for each (spec §4.2 "Object merge").
func Merge(dst, src *Value) {
	if dst.kind != Object || src.kind != Object {
		panic(ErrNotObject)
	}
	ordered := append([]member(nil), src.members...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].originalIndex < ordered[j].originalIndex
	})
	for _, m := range ordered {
		dst.SetMember(m.key.StringValue(), m.value)
	}
}

// --- Array operations ---

// NbElements returns the number of elements in an array.
func (v *Value) NbElements() int {
	if v.kind != Array {
		panic(ErrNotArray)
	}
	return len(v.elements)
}

// Element returns the i-th element, failing with ErrIndexOutOfRange if
// i is not in [0, NbElements).
func (v *Value) Element(i int) (*Value, error) {
	if v.kind != Array {
		panic(ErrNotArray)
	}
	if i < 0 || i >= len(v.elements) {
		return nil, ErrIndexOutOfRange
	}
	return v.elements[i], nil
}

// AddElement appends a value to an array.
func (v *Value) AddElement(value *Value) {
	if v.kind != Array {
		panic(ErrNotArray)
	}
	v.elements = append(v.elements, value)
}

// Elements returns an iterator over array elements in order.
func (v *Value) Elements() iter.Seq[*Value] {
	if v.kind != Array {
		panic(ErrNotArray)
	}
	return func(yield func(*Value) bool) {
		for _, e := range v.elements {
			if !yield(e) {
				return
			}
		}
	}
}
