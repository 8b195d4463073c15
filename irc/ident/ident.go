// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

// Package ident provides casefolded nickname and channel identifiers.
package ident

import (
	"errors"
	"strings"

	"golang.org/x/text/secure/precis"
)

var (
	errCouldNotStabilize = errors.New("Could not stabilize string while casefolding")
	errStringIsEmpty     = errors.New("String is empty")
)

// Each pass of PRECIS casefolding is a composition of idempotent operations,
// but not idempotent itself. Therefore, the spec says "do it four times and hope
// it converges". Golang's PRECIS implementation has a "repeat" option,
// which provides this functionality, but unfortunately it's not exposed publicly.
func iterateFolding(profile *precis.Profile, oldStr string) (str string, err error) {
	str = oldStr
	for i := 0; i < 4; i++ {
		str, err = profile.CompareKey(str)
		if err != nil {
			return "", err
		}
		if oldStr == str {
			break
		}
		oldStr = str
	}
	if oldStr != str {
		return "", errCouldNotStabilize
	}
	return str, nil
}

// Casefold returns a casefolded string, without doing any name or channel character checks.
func Casefold(str string) (string, error) {
	if len(str) == 0 {
		return "", errStringIsEmpty
	}
	return iterateFolding(precis.UsernameCaseMapped, str)
}

// foldLenient never fails: relayed nicknames routinely contain characters
// (spaces, '@', bidi mixes) that PRECIS rejects, and those still need a stable key.
func foldLenient(str string) string {
	if folded, err := Casefold(str); err == nil {
		return folded
	}
	return strings.ToLower(str)
}

// Identifier is a nickname or channel name together with its casefolded key.
// Identifiers compare by their folded form; the original spelling is kept for display.
type Identifier struct {
	name   string
	folded string
}

// New returns the Identifier for name. It never fails; empty names are allowed.
func New(name string) Identifier {
	if name == "" {
		return Identifier{}
	}
	return Identifier{name: name, folded: foldLenient(name)}
}

// String returns the identifier as it was originally spelled.
func (id Identifier) String() string {
	return id.name
}

// Folded returns the casefolded key used for equality and hashing.
func (id Identifier) Folded() string {
	return id.folded
}

// IsEmpty reports whether the identifier has no text.
func (id Identifier) IsEmpty() bool {
	return id.name == ""
}

// Equal reports whether two identifiers name the same nickname or channel.
func (id Identifier) Equal(other Identifier) bool {
	return id.folded == other.folded
}

// Suffix appends "@"+suffix to the identifier, e.g. to qualify a relayed
// nickname with the network it came from.
func (id Identifier) Suffix(suffix string) Identifier {
	return New(id.name + "@" + suffix)
}
