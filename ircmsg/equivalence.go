/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import (
	"reflect"
	"strings"
)

// Equivalent reports whether two Commands carry the same wire meaning.
// For two values of the same concrete type this is plain deep equality.
// The closed variant set means every recognized verb parses into its own
// named type, so the only place equivalence needs to bridge across types
// is the escape hatches: an OtherCommand produced by parsing an
// unrecognized verb is equivalent to a typed command that happens to
// render the same verb and params, and likewise OtherNumeric against
// NumericCommand. This lets the round-trip property in §8 hold even when
// a caller builds a Message by hand with the typed constructor instead of
// going through the parser's escape hatch.
func Equivalent(a, b Command) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return reflect.DeepEqual(a, b)
	}

	if oc, other, ok := pickOther(a, b); ok {
		return otherMatchesTyped(oc, other)
	}

	if on, other, ok := pickOtherNumeric(a, b); ok {
		return otherNumericMatchesTyped(on, other)
	}

	return false
}

func pickOther(a, b Command) (OtherCommand, Command, bool) {
	if oc, ok := a.(OtherCommand); ok {
		return oc, b, true
	}
	if oc, ok := b.(OtherCommand); ok {
		return oc, a, true
	}
	return OtherCommand{}, nil, false
}

func pickOtherNumeric(a, b Command) (OtherNumeric, Command, bool) {
	if on, ok := a.(OtherNumeric); ok {
		return on, b, true
	}
	if on, ok := b.(OtherNumeric); ok {
		return on, a, true
	}
	return OtherNumeric{}, nil, false
}

func otherMatchesTyped(oc OtherCommand, other Command) bool {
	if _, isOther := other.(OtherCommand); isOther {
		return false
	}
	if !strings.EqualFold(oc.Verb(), other.Verb()) {
		return false
	}
	return paramsEqual(oc.Params(), commandParams(other))
}

func otherNumericMatchesTyped(on OtherNumeric, other Command) bool {
	nc, ok := other.(NumericCommand)
	if !ok {
		return false
	}
	if on.Code != nc.Code {
		return false
	}
	return paramsEqual(on.Args, nc.Args)
}

// commandParams extracts a command's positional parameters via the
// Params interface, or nil if it somehow doesn't implement it.
func commandParams(c Command) []string {
	if p, ok := c.(Params); ok {
		return p.Params()
	}
	return nil
}

func paramsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
