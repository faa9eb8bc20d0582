// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"unsafe"

	"github.com/devblok/hellotriangle/core"
)

type journal struct {
	calls []string
}

func (j *journal) record(call string) {
	j.calls = append(j.calls, call)
}

type fakePlatform struct {
	journal *journal

	initErr    error
	windowErr  error
	nilWindow  bool
	closeAfter int
	onInit     func()

	polls          int
	requiredExts   []string
	windowConfig   core.WindowConfiguration
	procAddr       unsafe.Pointer
	terminateCount int
}

func (p *fakePlatform) Init() error {
	p.journal.record("platform.Init")
	if p.onInit != nil {
		p.onInit()
	}
	return p.initErr
}

func (p *fakePlatform) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	p.journal.record("platform.CreateWindow")
	p.windowConfig = cfg
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	if p.nilWindow {
		return nil, nil
	}
	return &fakeWindow{platform: p}, nil
}

func (p *fakePlatform) PollEvents() {
	p.polls++
}

func (p *fakePlatform) InstanceProcAddr() unsafe.Pointer {
	return p.procAddr
}

func (p *fakePlatform) Terminate() {
	p.terminateCount++
	p.journal.record("platform.Terminate")
}

type fakeWindow struct {
	platform *fakePlatform
}

func (w *fakeWindow) ShouldClose() bool {
	return w.platform.polls >= w.platform.closeAfter
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.platform.requiredExts
}

func (w *fakeWindow) Destroy() {
	w.platform.journal.record("window.Destroy")
}

type fakeDriver struct {
	journal *journal

	loadErr     error
	extensions  []string
	layers      []string
	createErr   error
	nilInstance bool

	created *core.InstanceCreateInfo
}

func (d *fakeDriver) Load(procAddr unsafe.Pointer) error {
	d.journal.record("driver.Load")
	return d.loadErr
}

func (d *fakeDriver) InstanceExtensions() ([]string, error) {
	return d.extensions, nil
}

func (d *fakeDriver) InstanceLayers() ([]string, error) {
	return d.layers, nil
}

func (d *fakeDriver) CreateInstance(info core.InstanceCreateInfo) (core.Instance, error) {
	d.journal.record("driver.CreateInstance")
	d.created = &info
	if d.createErr != nil {
		return nil, d.createErr
	}
	if d.nilInstance {
		return nil, nil
	}
	return &fakeInstance{journal: d.journal}, nil
}

type fakeInstance struct {
	journal *journal
}

func (i *fakeInstance) Destroy() {
	i.journal.record("instance.Destroy")
}

var errVkInitializationFailed = errors.New("vk.CreateInstance(): vulkan error: initialization failed")

const surfaceExt, xcbExt = "VK_KHR_surface", "VK_KHR_xcb_surface"

func newFakes() (*journal, *fakePlatform, *fakeDriver) {
	j := &journal{}
	p := &fakePlatform{
		journal:      j,
		requiredExts: []string{surfaceExt, xcbExt},
	}
	d := &fakeDriver{
		journal:    j,
		extensions: []string{"VK_KHR_get_physical_device_properties2", surfaceExt, xcbExt, "VK_EXT_debug_report"},
	}
	return j, p, d
}
