// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/devblok/hellotriangle/core"
	log "github.com/sirupsen/logrus"
)

// instanceInfo is what the driver offers to new instances.
type instanceInfo struct {
	Extensions []string `json:"extensions"`
	Layers     []string `json:"layers"`
}

func main() {
	driver := core.NewVulkanDriver()
	if err := driver.Load(nil); err != nil {
		log.Fatal(err)
	}

	var (
		info instanceInfo
		err  error
	)
	if info.Extensions, err = driver.InstanceExtensions(); err != nil {
		log.Fatal(err)
	}
	if info.Layers, err = driver.InstanceLayers(); err != nil {
		log.Fatal(err)
	}

	if bytes, err := json.Marshal(info); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.Fatal(err)
	}
}
