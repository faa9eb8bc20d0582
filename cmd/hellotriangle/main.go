// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/devblok/hellotriangle/core"
	"github.com/devblok/hellotriangle/platform"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

// Windowing libraries have to be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

// Static resources
var StaticResources packr.Box

func init() {
	StaticResources = packr.NewBox("./resources")
}

var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
	backend      = flag.String("backend", "", "Windowing backend, sdl or glfw")
	logLevel     = flag.String("loglevel", "", "Log level")
	debug        = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
)

// options are the command line flags, they take precedence over
// the environment which in turn overrides the boxed defaults.
type options struct {
	cpuProfile   string
	traceProfile string
	backend      string
	logLevel     string
	debug        bool
}

func main() {
	flag.Parse()
	os.Exit(run(options{
		cpuProfile:   opts.cpuProfile,
		traceProfile: opts.traceProfile,
		backend:      *backend,
		logLevel:     *logLevel,
		debug:        *debug,
	}))
}

func configure(opts options) (core.Configuration, error) {
	defaults, err := StaticResources.FindString("defaults.env")
	if err != nil {
		return core.Configuration{}, errors.New("default configuration not found: " + err.Error())
	}
	if err := core.LoadDefaults(defaults); err != nil {
		return core.Configuration{}, errors.New("default configuration is malformed: " + err.Error())
	}

	cfg := core.ConfigurationFromEnv()
	if opts.backend != "" {
		cfg.Backend = strings.ToLower(opts.backend)
	}
	if opts.logLevel != "" {
		level, err := log.ParseLevel(opts.logLevel)
		if err != nil {
			return core.Configuration{}, errors.New("invalid log level: " + err.Error())
		}
		cfg.LogLevel = level
	}
	if opts.debug {
		cfg.Instance.DebugMode = true
	}
	return cfg, nil
}

func run(opts options) int {
	cfg, err := configure(opts)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.SetLevel(cfg.LogLevel)

	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			log.WithError(err).Error("CPU profile could not be created")
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Error("CPU profiling could not be started")
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if opts.traceProfile != "" {
		f, err := os.Create(opts.traceProfile)
		if err != nil {
			log.WithError(err).Error("Trace file could not be created")
			return 1
		}
		defer f.Close()
		if err := trace.Start(f); err != nil {
			log.WithError(err).Error("Tracing could not be started")
			return 1
		}
		defer trace.Stop()
	}

	windowing, err := platform.New(cfg.Backend)
	if err != nil {
		log.WithError(err).Error("Windowing backend unavailable")
		return 1
	}

	log.WithField("backend", cfg.Backend).Debug("Starting")
	app := core.NewApplication(cfg, windowing, core.NewVulkanDriver())
	return core.RunAndReport(app, os.Stderr)
}
