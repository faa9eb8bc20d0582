// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"unsafe"

	vk "github.com/devblok/vulkan"
)

// NewVulkanDriver creates a Vulkan driver, it has to be loaded before use.
func NewVulkanDriver() *VulkanDriver {
	return &VulkanDriver{}
}

// VulkanDriver implements Driver on top of the Vulkan API
type VulkanDriver struct {
	loaded bool
}

// Load implements interface. A nil procAddr loads the system Vulkan library.
func (v *VulkanDriver) Load(procAddr unsafe.Pointer) error {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return errors.New("vk.Init(): " + err.Error())
	}
	v.loaded = true
	return nil
}

// InstanceExtensions implements interface
func (v *VulkanDriver) InstanceExtensions() ([]string, error) {
	if !v.loaded {
		return nil, errors.New("vulkan driver is not loaded")
	}

	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(num): " + err.Error())
	}
	properties := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, properties)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceExtensionProperties(properties): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, ext := range properties[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers implements interface
func (v *VulkanDriver) InstanceLayers() ([]string, error) {
	if !v.loaded {
		return nil, errors.New("vulkan driver is not loaded")
	}

	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(num): " + err.Error())
	}
	properties := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, properties)); err != nil {
		return nil, errors.New("vk.EnumerateInstanceLayerProperties(properties): " + err.Error())
	}

	names := make([]string, 0, count)
	for _, layer := range properties[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (v *VulkanDriver) CreateInstance(info InstanceCreateInfo) (Instance, error) {
	if !v.loaded {
		return nil, errors.New("vulkan driver is not loaded")
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.Application.ApplicationName),
		ApplicationVersion: uint32(info.Application.ApplicationVersion),
		PEngineName:        safeString(info.Application.EngineName),
		EngineVersion:      uint32(info.Application.EngineVersion),
		ApiVersion:         uint32(info.Application.APIVersion),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if instance == nil {
		return nil, errors.New("vk.CreateInstance(): null instance handle")
	}
	vi, err := newVulkanInstance(instance)
	if err != nil {
		return nil, err
	}
	return vi, nil
}

// Instance level loaders, swapped out in tests.
var (
	initInstance    = vk.InitInstance
	destroyInstance = vk.DestroyInstance
)

// newVulkanInstance loads the instance level functions and takes
// ownership of instance, destroying it if loading fails.
func newVulkanInstance(instance vk.Instance) (*VulkanInstance, error) {
	if err := initInstance(instance); err != nil {
		destroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}
	return &VulkanInstance{instance: instance}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	instance vk.Instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	if v == nil || v.instance == nil {
		return
	}
	destroyInstance(v.instance, nil)
	v.instance = nil
}
