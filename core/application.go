// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle stage of an Application.
type State int

// Application states, an application only ever moves forward through them.
const (
	Uninitialized State = iota
	WindowReady
	InstanceReady
	Running
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case WindowReady:
		return "window ready"
	case InstanceReady:
		return "instance ready"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// platformOwned is set while an application holds the windowing subsystem.
var platformOwned int32

// Runner is anything with a blocking Run.
type Runner interface {
	Run() error
}

// NewApplication creates an application that has not been run yet.
func NewApplication(cfg Configuration, platform Platform, driver Driver) *Application {
	return &Application{
		configuration: cfg,
		platform:      platform,
		driver:        driver,
		logger:        logrus.StandardLogger(),
	}
}

// Application owns the window and the graphics instance and
// drives them from creation to destruction.
type Application struct {
	configuration Configuration
	platform      Platform
	driver        Driver
	logger        logrus.FieldLogger

	state         State
	platformReady bool
	window        Window
	instance      Instance
}

// SetLogger replaces the logger, the standard logrus logger is used by default.
func (a *Application) SetLogger(logger logrus.FieldLogger) {
	a.logger = logger
}

// State returns the current lifecycle state.
func (a *Application) State() State {
	return a.state
}

// Run opens the window, creates the instance and polls events until the
// window is closed. Everything that was created is destroyed before Run
// returns, whether it succeeded or not. An application can run only once.
func (a *Application) Run() error {
	if a.state != Uninitialized {
		return ErrNotReusable
	}
	if !atomic.CompareAndSwapInt32(&platformOwned, 0, 1) {
		return ErrPlatformBusy
	}
	defer atomic.StoreInt32(&platformOwned, 0)
	defer a.cleanup()

	if err := a.initWindow(); err != nil {
		return err
	}
	if err := a.createInstance(); err != nil {
		return err
	}
	a.mainLoop()
	return nil
}

func (a *Application) initWindow() error {
	if err := a.platform.Init(); err != nil {
		return fmt.Errorf("%w: %s", ErrPlatformInit, err.Error())
	}
	a.platformReady = true

	window, err := a.platform.CreateWindow(a.configuration.Window)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCreateWindow, err.Error())
	}
	if window == nil {
		return fmt.Errorf("%w: null window handle", ErrCreateWindow)
	}
	a.window = window
	a.state = WindowReady

	a.logger.WithFields(logrus.Fields{
		"title":  a.configuration.Window.Title,
		"width":  a.configuration.Window.Width,
		"height": a.configuration.Window.Height,
	}).Debug("Window created")
	return nil
}

func (a *Application) createInstance() error {
	if err := a.driver.Load(a.platform.InstanceProcAddr()); err != nil {
		return fmt.Errorf("%w: %s", ErrCreateInstance, err.Error())
	}

	required := a.window.RequiredInstanceExtensions()
	if err := a.checkExtensions(required); err != nil {
		return err
	}

	var layers []string
	if a.configuration.Instance.DebugMode {
		layers = []string{ValidationLayer}
		if err := a.checkLayers(layers); err != nil {
			return err
		}
	}

	info := InstanceCreateInfo{
		Application: a.configuration.Instance.Application,
		Extensions:  required,
		Layers:      layers,
	}

	instance, err := a.driver.CreateInstance(info)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCreateInstance, err.Error())
	}
	if instance == nil {
		return fmt.Errorf("%w: null instance handle", ErrCreateInstance)
	}
	a.instance = instance
	a.state = InstanceReady

	a.logger.WithFields(logrus.Fields{
		"extensions": len(info.Extensions),
		"layers":     len(info.Layers),
	}).Info("Instance created")
	return nil
}

func (a *Application) checkExtensions(required []string) error {
	supported, err := a.driver.InstanceExtensions()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingExtension, err.Error())
	}

	matched, err := CheckExtensions(supported, required)
	for _, name := range matched {
		a.logger.WithField("extension", name).Info("Available extension")
	}
	a.logger.WithFields(logrus.Fields{
		"required":  len(required),
		"supported": len(matched),
	}).Info("Required extensions checked")
	return err
}

func (a *Application) checkLayers(required []string) error {
	supported, err := a.driver.InstanceLayers()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingLayer, err.Error())
	}
	if _, err := CheckLayers(supported, required); err != nil {
		return err
	}
	a.logger.WithField("layers", required).Debug("Validation layers enabled")
	return nil
}

func (a *Application) mainLoop() {
	a.state = Running

	timeService := NewTime(a.configuration.Time)
	defer timeService.Stop()

	for !a.window.ShouldClose() {
		timeService.Wait()
		a.platform.PollEvents()
	}
	a.logger.Info("Event loop exited")
}

// cleanup destroys whatever was created, instance first.
func (a *Application) cleanup() {
	a.state = ShuttingDown

	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	if a.platformReady {
		a.platform.Terminate()
		a.platformReady = false
	}

	a.state = Terminated
}

// RunAndReport runs r and turns the outcome into a process exit code.
// A failure is written to stderr as a single line.
func RunAndReport(r Runner, stderr io.Writer) int {
	if err := r.Run(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
