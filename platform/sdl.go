// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"errors"
	"unsafe"

	"github.com/devblok/hellotriangle/core"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// NewSDL creates the SDL2 backend.
func NewSDL() *SDL {
	return &SDL{
		windows: make(map[uint32]*SDLWindow),
	}
}

// SDL is a windowing subsystem backed by SDL2.
type SDL struct {
	vulkanLoaded bool
	windows      map[uint32]*SDLWindow
}

// Init implements interface
func (s *SDL) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.New("sdl.Init(): " + err.Error())
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}
	s.vulkanLoaded = true
	log.Debug("SDL initialised")
	return nil
}

// CreateWindow implements interface
func (s *SDL) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	var flags uint32 = sdl.WINDOW_VULKAN
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags)
	if err != nil {
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	id, err := window.GetID()
	if err != nil {
		window.Destroy()
		return nil, errors.New("sdl.Window.GetID(): " + err.Error())
	}

	w := &SDLWindow{
		id:     id,
		window: window,
		owner:  s,
	}
	s.windows[id] = w
	return w, nil
}

// PollEvents implements interface
func (s *SDL) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		s.handleEvent(event)
	}
}

// handleEvent raises the close flag on quit, window close and Escape.
func (s *SDL) handleEvent(event sdl.Event) {
	switch et := event.(type) {
	case *sdl.QuitEvent:
		for _, w := range s.windows {
			w.shouldClose = true
		}
	case *sdl.WindowEvent:
		if et.Event == sdl.WINDOWEVENT_CLOSE {
			s.closeWindow(et.WindowID)
		}
	case *sdl.KeyboardEvent:
		if et.Keysym.Sym == sdl.K_ESCAPE {
			s.closeWindow(et.WindowID)
		}
	}
}

func (s *SDL) closeWindow(id uint32) {
	if w, ok := s.windows[id]; ok {
		w.shouldClose = true
	}
}

// InstanceProcAddr implements interface
func (s *SDL) InstanceProcAddr() unsafe.Pointer {
	if !s.vulkanLoaded {
		return nil
	}
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Terminate implements interface
func (s *SDL) Terminate() {
	if s.vulkanLoaded {
		sdl.VulkanUnloadLibrary()
		s.vulkanLoaded = false
	}
	sdl.Quit()
	log.Debug("SDL terminated")
}

// SDLWindow is a window created by the SDL backend.
type SDLWindow struct {
	id          uint32
	shouldClose bool
	window      *sdl.Window
	owner       *SDL
}

// ShouldClose implements interface
func (w *SDLWindow) ShouldClose() bool {
	return w.shouldClose
}

// RequiredInstanceExtensions implements interface
func (w *SDLWindow) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// Destroy implements interface
func (w *SDLWindow) Destroy() {
	if w.owner != nil {
		delete(w.owner.windows, w.id)
	}
	if w.window == nil {
		return
	}
	if err := w.window.Destroy(); err != nil {
		log.WithError(err).Warn("sdl.Window.Destroy() failed")
	}
	w.window = nil
}
