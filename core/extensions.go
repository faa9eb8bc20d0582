// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strings"
)

// CheckExtensions verifies that every required extension is among the
// supported ones. Names are compared for exact equality. It returns the
// matched names in the order they were required, each name once.
func CheckExtensions(supported, required []string) ([]string, error) {
	matched, missing := match(supported, required)
	if len(missing) > 0 {
		return matched, fmt.Errorf("%w: %s", ErrMissingExtension, strings.Join(missing, ", "))
	}
	return matched, nil
}

// CheckLayers verifies that every required layer is among the supported ones.
func CheckLayers(supported, required []string) ([]string, error) {
	matched, missing := match(supported, required)
	if len(missing) > 0 {
		return matched, fmt.Errorf("%w: %s", ErrMissingLayer, strings.Join(missing, ", "))
	}
	return matched, nil
}

// match compares distinct names, so a duplicate on either side
// can never stand in for a name that is absent.
func match(supported, required []string) (matched, missing []string) {
	available := make(map[string]struct{}, len(supported))
	for _, name := range supported {
		available[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(required))
	for _, name := range required {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := available[name]; ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}
	return matched, missing
}
