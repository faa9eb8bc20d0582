// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package platform provides the windowing subsystems the application can run on.
package platform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/devblok/hellotriangle/core"
)

var backends = map[string]func() core.Platform{
	"sdl":  func() core.Platform { return NewSDL() },
	"glfw": func() core.Platform { return NewGLFW() },
}

// Names lists the available backends.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the backend registered under name, empty selects SDL.
func New(name string) (core.Platform, error) {
	if name == "" {
		name = "sdl"
	}
	constructor, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return constructor(), nil
}
