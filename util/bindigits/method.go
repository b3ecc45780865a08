// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bindigits

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMethod is returned for an unknown bit counting method.
var ErrMethod = errors.New("bindigits: unknown method")

// Method selects a bit counting algorithm.
type Method int

// The bit counting methods. Len is the one used by Count.
const (
	Len Method = iota
	ShiftRight
	ShiftLeft
	Logarithm
)

var methodNames = map[Method]string{
	Len:        "len",
	ShiftRight: "rshift",
	ShiftLeft:  "lshift",
	Logarithm:  "log",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Methods returns all bit counting methods.
func Methods() []Method {
	return []Method{Len, ShiftRight, ShiftLeft, Logarithm}
}

// ParseMethod returns the method with the given name. The empty name selects
// Len.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "len":
		return Len, nil
	case "rshift", "shiftright":
		return ShiftRight, nil
	case "lshift", "shiftleft":
		return ShiftLeft, nil
	case "log", "logarithm":
		return Logarithm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMethod, name)
	}
}

// CountWith returns the bits of u counted with method m.
func CountWith(m Method, u uint64) (int, error) {
	switch m {
	case Len:
		return Count(u), nil
	case ShiftRight:
		return CountShiftRight(u), nil
	case ShiftLeft:
		return CountShiftLeft(u), nil
	case Logarithm:
		return CountLog(u), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrMethod, m)
	}
}
