// This file is part of emuxsync.
//
// emuxsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuxsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuxsync.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The pattern is stored alongside the
// placeholder values. Formatting happens in the Error() function.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Adjacent duplicate parts of the
// message are removed.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first placeholder value that is itself an error. This
// allows the errors package in the standard library to walk a chain of
// curated errors.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	var c curated
	return errors.As(err, &c)
}

// Is checks if the most recent curated error in the chain was created with
// the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	var c curated
	if errors.As(err, &c) {
		return c.pattern == pattern
	}
	return false
}

// Has checks if the pattern occurs anywhere in the curated error chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	var c curated
	errors.As(err, &c)
	for i := range c.values {
		if e, ok := c.values[i].(error); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
