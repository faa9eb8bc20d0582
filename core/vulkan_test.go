// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/hellotriangle/core"
	qt "github.com/frankban/quicktest"
)

func TestVulkanDriverNotLoaded(t *testing.T) {
	c := qt.New(t)
	driver := core.NewVulkanDriver()

	_, err := driver.InstanceExtensions()
	c.Assert(err, qt.ErrorMatches, "vulkan driver is not loaded")
	_, err = driver.InstanceLayers()
	c.Assert(err, qt.ErrorMatches, "vulkan driver is not loaded")
	_, err = driver.CreateInstance(core.InstanceCreateInfo{Application: core.DefaultApplicationInfo})
	c.Assert(err, qt.ErrorMatches, "vulkan driver is not loaded")
}

func TestVulkanInstanceDestroyNil(t *testing.T) {
	var instance *core.VulkanInstance
	instance.Destroy()
	(&core.VulkanInstance{}).Destroy()
}
