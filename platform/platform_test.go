// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform_test

import (
	"testing"

	"github.com/devblok/hellotriangle/platform"
	qt "github.com/frankban/quicktest"
)

func TestNames(t *testing.T) {
	c := qt.New(t)
	c.Assert(platform.Names(), qt.DeepEquals, []string{"glfw", "sdl"})
}

func TestNew(t *testing.T) {
	c := qt.New(t)

	p, err := platform.New("")
	c.Assert(err, qt.IsNil)
	_, ok := p.(*platform.SDL)
	c.Assert(ok, qt.Equals, true)

	p, err = platform.New("GLFW")
	c.Assert(err, qt.IsNil)
	_, ok = p.(*platform.GLFW)
	c.Assert(ok, qt.Equals, true)

	_, err = platform.New("wayland")
	c.Assert(err, qt.ErrorMatches, `unknown platform "wayland", expected one of glfw, sdl`)
}

// Neither backend touches the native library before Init.
func TestInstanceProcAddrBeforeInit(t *testing.T) {
	c := qt.New(t)
	c.Assert(platform.NewSDL().InstanceProcAddr() == nil, qt.Equals, true)
	c.Assert(platform.NewGLFW().InstanceProcAddr() == nil, qt.Equals, true)
}
