// Package jsonbuilder assembles JSON documents from typed builders and
// renders them as either pretty-printed or compact text. Unlike
// encoding/json's map-backed objects, members render in the order they were
// added, so the same builder always produces byte-identical output.
package jsonbuilder

import (
	"strings"
	"unicode/utf8"
)

const indentStep = "  "

// Value is any node that can be rendered into a JSON document.
type Value interface {
	write(sb *strings.Builder, depth int, pretty bool)
}

// Object builds a JSON object whose members keep insertion order.
type Object struct {
	members []member
}

type member struct {
	key string
	val Value
}

// Array builds a JSON array.
type Array struct {
	items []Value
}

// str is a JSON string value.
type str string

// NewObject creates an empty object builder.
func NewObject() *Object { return &Object{} }

// NewArray creates an empty array builder.
func NewArray() *Array { return &Array{} }

// AddString appends a string member. Returns the object for chaining.
func (o *Object) AddString(key, value string) *Object {
	o.members = append(o.members, member{key: key, val: str(value)})
	return o
}

// AddObject appends an object member. Returns the object for chaining.
func (o *Object) AddObject(key string, value *Object) *Object {
	o.members = append(o.members, member{key: key, val: value})
	return o
}

// AddArray appends an array member. Returns the object for chaining.
func (o *Object) AddArray(key string, value *Array) *Object {
	o.members = append(o.members, member{key: key, val: value})
	return o
}

// Len reports the number of members added so far.
func (o *Object) Len() int { return len(o.members) }

// AddObject appends an object item. Returns the array for chaining.
func (a *Array) AddObject(value *Object) *Array {
	a.items = append(a.items, value)
	return a
}

// AddString appends a string item. Returns the array for chaining.
func (a *Array) AddString(value string) *Array {
	a.items = append(a.items, str(value))
	return a
}

// Len reports the number of items added so far.
func (a *Array) Len() int { return len(a.items) }

// Compact renders the object on a single line with no whitespace.
func (o *Object) Compact() string { return render(o, false) }

// Pretty renders the object indented with two spaces per level.
func (o *Object) Pretty() string { return render(o, true) }

// Compact renders the array on a single line with no whitespace.
func (a *Array) Compact() string { return render(a, false) }

// Pretty renders the array indented with two spaces per level.
func (a *Array) Pretty() string { return render(a, true) }

func render(v Value, pretty bool) string {
	var sb strings.Builder
	v.write(&sb, 0, pretty)
	return sb.String()
}

func (o *Object) write(sb *strings.Builder, depth int, pretty bool) {
	if len(o.members) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		}
		writeEscaped(sb, m.key)
		sb.WriteByte(':')
		if pretty {
			sb.WriteByte(' ')
		}
		m.val.write(sb, depth+1, pretty)
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte('}')
}

func (a *Array) write(sb *strings.Builder, depth int, pretty bool) {
	if len(a.items) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, item := range a.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		if pretty {
			sb.WriteByte('\n')
			writeIndent(sb, depth+1)
		}
		item.write(sb, depth+1, pretty)
	}
	if pretty {
		sb.WriteByte('\n')
		writeIndent(sb, depth)
	}
	sb.WriteByte(']')
}

func (s str) write(sb *strings.Builder, _ int, _ bool) {
	writeEscaped(sb, string(s))
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentStep)
	}
}

const hexDigits = "0123456789abcdef"

// writeEscaped writes s as a quoted JSON string per RFC 8259: the two
// mandatory escapes, the common control shorthands, and \u00XX for the rest
// of the control range. Valid multi-byte UTF-8 passes through untouched;
// invalid bytes become U+FFFD so the output is always well-formed JSON.
func writeEscaped(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b == '"':
			sb.WriteString(`\"`)
			i++
		case b == '\\':
			sb.WriteString(`\\`)
			i++
		case b == '\n':
			sb.WriteString(`\n`)
			i++
		case b == '\r':
			sb.WriteString(`\r`)
			i++
		case b == '\t':
			sb.WriteString(`\t`)
			i++
		case b == '\b':
			sb.WriteString(`\b`)
			i++
		case b == '\f':
			sb.WriteString(`\f`)
			i++
		case b < 0x20:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0xf])
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				sb.WriteRune(utf8.RuneError)
			} else {
				sb.WriteString(s[i : i+size])
			}
			i += size
		}
	}
	sb.WriteByte('"')
}
