// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package ident

import (
	"sort"
)

// Set is a set of identifiers keyed by their folded form.
// The zero value is an empty, read-only set; use NewSet to build one.
type Set struct {
	members map[string]Identifier
}

// NewSet returns a set holding the given names.
func NewSet(names ...string) Set {
	set := Set{members: make(map[string]Identifier, len(names))}
	for _, name := range names {
		set.Add(New(name))
	}
	return set
}

// Add inserts id into the set. Empty identifiers are ignored.
func (set *Set) Add(id Identifier) {
	if id.IsEmpty() {
		return
	}
	if set.members == nil {
		set.members = make(map[string]Identifier)
	}
	set.members[id.folded] = id
}

// Has reports whether id is in the set.
func (set Set) Has(id Identifier) bool {
	_, ok := set.members[id.folded]
	return ok
}

// HasName is shorthand for Has(New(name)).
func (set Set) HasName(name string) bool {
	return set.Has(New(name))
}

// Len returns the number of members.
func (set Set) Len() int {
	return len(set.members)
}

// Members returns the members sorted by folded key.
func (set Set) Members() (result []Identifier) {
	result = make([]Identifier, 0, len(set.members))
	for _, id := range set.members {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].folded < result[j].folded })
	return
}
