// Package jsoncst implements the JSON-dialect tokenizer and parser this
// module's PGN support is built from (§4.3: "a reference for C5/C6"), and
// is reused directly for settings loading rather than kept as an internal
// helper. The dialect is standard JSON with two deliberate narrowings:
// integer-only numbers and no trailing commas — plus two loosenings:
// `//`/`/* */` comments are permitted anywhere whitespace is, and
// duplicate object keys are accepted, first-wins, with every repeat
// reported.
//
// Unlike package pgn's green/red split, a JSON document's tree is small
// and consumed immediately by its caller (settings loading), so this
// package builds one flat, position-bearing Value tree directly rather
// than a separate immutable/lazy-positioned pair of layers.
package jsoncst

import (
	"sort"
	"strings"
)

// Kind is the tagged-variant discriminator for a parsed JSON value.
type Kind uint8

const (
	KindMap Kind = iota
	KindList
	KindInteger
	KindString
	KindBoolean
	KindNull
	// KindMissing marks a value the parser could not find (a malformed or
	// absent construct), synthesised with zero length so the surrounding
	// tree stays structurally complete despite the error.
	KindMissing
)

var kindNames = [...]string{
	KindMap:     "Map",
	KindList:    "List",
	KindInteger: "Integer",
	KindString:  "String",
	KindBoolean: "Boolean",
	KindNull:    "Null",
	KindMissing: "Missing",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Entry is one key/value pair of a Map, keeping the key's own span so a
// caller can report diagnostics against the key text (e.g. "unknown
// configuration key").
type Entry struct {
	Key       string
	KeyStart  int
	KeyLength int
	Value     *Value
}

// Value is a single node of the parsed JSON tree. Which fields are
// meaningful is determined by Kind, the same tagged-union discipline
// package green uses for PGN syntax nodes.
type Value struct {
	kind   Kind
	start  int
	length int

	integer int64
	str     string
	boolean bool
	entries []Entry
	items   []*Value
}

func (v *Value) Kind() Kind   { return v.kind }
func (v *Value) Start() int   { return v.start }
func (v *Value) Length() int  { return v.length }
func (v *Value) End() int     { return v.start + v.length }

// AsInteger reports v's decoded integer and whether v is a KindInteger.
func (v *Value) AsInteger() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.integer, true
}

// AsString reports v's decoded string and whether v is a KindString.
func (v *Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool reports v's boolean and whether v is a KindBoolean.
func (v *Value) AsBool() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.boolean, true
}

// IsNull reports whether v is the Null literal.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Entries returns v's Map entries in document order, or nil if v is not
// a KindMap.
func (v *Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	return v.entries
}

// Items returns v's List elements in document order, or nil if v is not
// a KindList.
func (v *Value) Items() []*Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}

// Get looks up key in a Map value (first-wins semantics already applied
// by the parser), returning nil if v is not a Map or has no such key.
func (v *Value) Get(key string) *Value {
	if v.kind != KindMap {
		return nil
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// RootJsonSyntax is the result of one ParseJSON call: a Value tree plus
// the flat, document-ordered list of diagnostics collected while
// building it.
type RootJsonSyntax struct {
	value  *Value
	errors []ErrorInfo
}

// Value returns the parsed root value.
func (r RootJsonSyntax) Value() *Value { return r.value }

// Errors returns every diagnostic recorded during the parse.
func (r RootJsonSyntax) Errors() []ErrorInfo { return r.errors }

// HasErrors reports whether r recorded any diagnostic.
func (r RootJsonSyntax) HasErrors() bool { return len(r.errors) > 0 }

// DisplayErrors renders every recorded diagnostic as one line per entry.
func (r RootJsonSyntax) DisplayErrors() string {
	var b strings.Builder
	for i, e := range r.errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Display())
	}
	return b.String()
}

// ParseJSON parses text as one configuration document. It never fails:
// malformed or partial input produces a Missing value somewhere in the
// tree and a non-empty Errors list, rather than an error return.
func ParseJSON(text []byte) RootJsonSyntax {
	var errs []ErrorInfo
	p := newParser(string(text), &errs)
	v := p.parseDocument()
	// The parser's one-token lookahead can scan (and report on) the next
	// token before it records a diagnostic at an earlier offset, so restore
	// document order here.
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Start < errs[j].Start })
	return RootJsonSyntax{value: v, errors: errs}
}
