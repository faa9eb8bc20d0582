// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core sets up a window and a Vulkan instance and keeps
// them alive until the window is asked to close.
package core

import (
	"errors"
	"unsafe"
)

// package errors
var (
	ErrPlatformInit     = errors.New("failed to initialise windowing subsystem")
	ErrCreateWindow     = errors.New("failed to create window")
	ErrMissingExtension = errors.New("not supported extensions found")
	ErrMissingLayer     = errors.New("not supported layers found")
	ErrCreateInstance   = errors.New("failed to create instance")
	ErrPlatformBusy     = errors.New("windowing subsystem is owned by another application")
	ErrNotReusable      = errors.New("application has already been run")
)

// Destroyable is anything that holds on to native resources
// and has to release them explicitly.
type Destroyable interface {
	// Destroy releases the native resources.
	Destroy()
}

// Platform describes the windowing subsystem. Its state is process wide,
// Init and Terminate must be called exactly once each and in that order.
type Platform interface {
	// Init initialises the windowing subsystem.
	Init() error

	// CreateWindow opens a window without a client rendering API.
	CreateWindow(cfg WindowConfiguration) (Window, error)

	// PollEvents processes pending events and returns immediately.
	PollEvents()

	// InstanceProcAddr returns the vkGetInstanceProcAddr the platform
	// loaded, nil means the default loader should be used.
	InstanceProcAddr() unsafe.Pointer

	// Terminate tears down the windowing subsystem.
	Terminate()
}

// Window is a platform window.
type Window interface {
	Destroyable

	// ShouldClose reports whether the close flag has been raised.
	ShouldClose() bool

	// RequiredInstanceExtensions lists the instance extensions needed
	// to present to this window's surface.
	RequiredInstanceExtensions() []string
}

// Driver is the graphics API entry point.
type Driver interface {
	// Load binds the API to the given instance proc address.
	Load(procAddr unsafe.Pointer) error

	// InstanceExtensions enumerates the instance extensions the driver supports.
	InstanceExtensions() ([]string, error)

	// InstanceLayers enumerates the instance layers the driver supports.
	InstanceLayers() ([]string, error)

	// CreateInstance creates the graphics API instance.
	CreateInstance(info InstanceCreateInfo) (Instance, error)
}

// Instance is a created graphics API instance.
type Instance interface {
	Destroyable
}

// Version is a packed major.minor.patch version, laid out like VK_MAKE_VERSION.
type Version uint32

// MakeVersion packs a version number.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

// Major part of the version.
func (v Version) Major() uint32 { return uint32(v) >> 22 }

// Minor part of the version.
func (v Version) Minor() uint32 { return uint32(v) >> 12 & 0x3ff }

// Patch part of the version.
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

// APIVersion10 is the Vulkan 1.0 API version.
var APIVersion10 = MakeVersion(1, 0, 0)

// ApplicationInfo identifies the application to the driver.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
}

// InstanceCreateInfo holds everything that is needed to create an instance.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// DefaultApplicationInfo describes this application.
var DefaultApplicationInfo = ApplicationInfo{
	ApplicationName:    "Hello Triangle",
	ApplicationVersion: MakeVersion(1, 0, 0),
	EngineName:         "No Engine",
	EngineVersion:      MakeVersion(1, 0, 0),
	APIVersion:         APIVersion10,
}
