// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digits

import (
	"fmt"
	"strings"
)

// Method selects a digit counting algorithm.
type Method int

// The digit counting methods. Lookup is the one used by Count.
const (
	Lookup Method = iota
	Division
	Logarithm
)

var methodNames = map[Method]string{
	Lookup:    "lookup",
	Division:  "div",
	Logarithm: "log",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Methods returns all digit counting methods.
func Methods() []Method {
	return []Method{Lookup, Division, Logarithm}
}

// ParseMethod returns the method with the given name. The empty name selects
// Lookup.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "lookup":
		return Lookup, nil
	case "div", "division":
		return Division, nil
	case "log", "logarithm":
		return Logarithm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMethod, name)
	}
}

// CountWith returns the digits of u counted with method m.
func CountWith(m Method, u uint64) (int, error) {
	switch m {
	case Lookup:
		return Count(u), nil
	case Division:
		return CountDiv(u), nil
	case Logarithm:
		return CountLog(u), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrMethod, m)
	}
}
