// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"errors"
	"unsafe"

	"github.com/devblok/hellotriangle/core"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"
)

// NewGLFW creates the GLFW backend.
func NewGLFW() *GLFW {
	return &GLFW{}
}

// GLFW is a windowing subsystem backed by GLFW 3.3.
type GLFW struct {
	initialised bool
}

// Init implements interface
func (g *GLFW) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.New("glfw.Init(): " + err.Error())
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw.VulkanSupported(): no Vulkan loader found")
	}
	g.initialised = true
	log.Debug("GLFW initialised")
	return nil
}

// CreateWindow implements interface
func (g *GLFW) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.New("glfw.CreateWindow(): " + err.Error())
	}
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if closesWindow(key, action) {
			w.SetShouldClose(true)
		}
	})
	return &GLFWWindow{window: window}, nil
}

func closesWindow(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

// PollEvents implements interface
func (g *GLFW) PollEvents() {
	glfw.PollEvents()
}

// InstanceProcAddr implements interface
func (g *GLFW) InstanceProcAddr() unsafe.Pointer {
	if !g.initialised {
		return nil
	}
	return glfw.GetVulkanGetInstanceProcAddress()
}

// Terminate implements interface
func (g *GLFW) Terminate() {
	glfw.Terminate()
	g.initialised = false
	log.Debug("GLFW terminated")
}

// GLFWWindow is a window created by the GLFW backend.
type GLFWWindow struct {
	window *glfw.Window
}

// ShouldClose implements interface
func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

// RequiredInstanceExtensions implements interface
func (w *GLFWWindow) RequiredInstanceExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

// Destroy implements interface
func (w *GLFWWindow) Destroy() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
}
