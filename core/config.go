// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys read by ConfigurationFromEnv.
const (
	EnvBackend    = "HELLO_BACKEND"
	EnvLogLevel   = "HELLO_LOG_LEVEL"
	EnvValidation = "HELLO_VALIDATION"
	EnvPollDelay  = "HELLO_POLL_DELAY"
)

// ValidationLayer is enabled when the instance is created in debug mode.
const ValidationLayer = "VK_LAYER_KHRONOS_validation"

// Configuration defines the application configuration
type Configuration struct {
	Backend  string
	LogLevel logrus.Level

	Time     TimeConfiguration
	Window   WindowConfiguration
	Instance InstanceConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the minimum time between two event polls
	// in milliseconds. Zero polls as fast as possible.
	EventPollDelay int
}

// WindowConfiguration describes the window that is opened
type WindowConfiguration struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// InstanceConfiguration is used to configure the graphics instance
type InstanceConfiguration struct {
	Application ApplicationInfo

	// DebugMode enables the validation layer.
	DebugMode bool
}

// DefaultConfiguration returns the fixed window and instance parameters.
func DefaultConfiguration() Configuration {
	return Configuration{
		Backend:  "sdl",
		LogLevel: logrus.InfoLevel,
		Window: WindowConfiguration{
			Title:  "Vulkan Test",
			Width:  800,
			Height: 600,
		},
		Instance: InstanceConfiguration{
			Application: DefaultApplicationInfo,
		},
	}
}

// LoadDefaults parses dotenv formatted defaults and sets every key
// that is not already present in the environment.
func LoadDefaults(defaults string) error {
	values, err := godotenv.Unmarshal(defaults)
	if err != nil {
		return err
	}
	for key, value := range values {
		if envy.Get(key, "") == "" {
			envy.Set(key, value)
		}
	}
	return nil
}

// ConfigurationFromEnv builds a configuration from DefaultConfiguration
// and the environment. Unparseable values keep their default.
func ConfigurationFromEnv() Configuration {
	cfg := DefaultConfiguration()

	if backend := strings.TrimSpace(envy.Get(EnvBackend, "")); backend != "" {
		cfg.Backend = strings.ToLower(backend)
	}
	if level, err := logrus.ParseLevel(envy.Get(EnvLogLevel, cfg.LogLevel.String())); err == nil {
		cfg.LogLevel = level
	}
	if debug, err := strconv.ParseBool(envy.Get(EnvValidation, "false")); err == nil {
		cfg.Instance.DebugMode = debug
	}
	if delay, err := strconv.Atoi(envy.Get(EnvPollDelay, "0")); err == nil && delay >= 0 {
		cfg.Time.EventPollDelay = delay
	}
	return cfg
}
