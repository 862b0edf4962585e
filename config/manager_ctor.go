/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */


package config

import (
	"fmt"
	_ "github.com/endink/go-sharding-route/config/source"
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/core/provider"
	"github.com/pingcap/errors"
	"go.uber.org/config"
	"strings"
)

func NewManager() (Manager, error) {
	var sources []config.YAMLOption

	files := DefaultConfigFileLocations()

	var sb strings.Builder
	sb.WriteString("Search configuration locations:")
	for _, f := range files {
		sb.WriteString(core.LineSeparator)
		if core.FileExists(f) {
			sources = append(sources, config.File(f))
			sb.WriteString("[Found]: " + f)
		} else {
			sb.WriteString("[Not Found]: " + f)
		}
	}
	logger.Info(sb.String())

	if len(sources) == 0 {
		return nil, errors.New("no configuration file was found")
	}
	sources = append(sources, config.Permissive())
	yaml, err := config.NewYAML(sources...)
	if err != nil {
		return nil, errors.Annotate(err, "build boot config file fault")
	}
	return NewManagerFromYAML(yaml)
}

func NewManagerFromYAML(yaml *config.YAML) (Manager, error) {
	boot := &cnfManager{Provider: FileProvider}
	if err := yaml.Get("config").Populate(boot); err != nil {
		return nil, errors.Trace(err)
	}
	name := core.IfBlankAndTrim(boot.Provider, FileProvider)

	p, ok := provider.DefaultRegistry().TryLoad(provider.ConfigSource, name)
	if !ok {
		return nil, fmt.Errorf("config source provider named '%s' was not found", name)
	}
	s, ok := p.(Source)
	if !ok {
		return nil, fmt.Errorf("provider named '%s' is not a config source", name)
	}
	return NewManagerWithSource(yaml, s)
}

// NewManagerWithSource loads the settings through the given source, bypassing the registry lookup.
func NewManagerWithSource(yaml *config.YAML, source Source) (Manager, error) {
	mgr := &cnfManager{Provider: source.GetName(), source: source}
	v, err := source.Load(yaml)
	if err != nil {
		return nil, errors.Annotatef(err, "load configuration from '%s' source failed", source.GetName())
	}
	mgr.current = v
	if err = mgr.initialize(); err != nil {
		return nil, err
	}
	return mgr, nil
}

func NewManagerFromString(ymlContent string) (Manager, error) {
	r := strings.NewReader(ymlContent)
	yml, err := config.NewYAML(config.Source(r), config.Permissive())
	if err != nil {
		return nil, errors.Trace(err)
	}

	return NewManagerFromYAML(yml)
}

func NewManagerFromFile(files ...string) (Manager, error) {
	if len(files) == 0 {
		return nil, errors.New("at least one configuration file is required")
	}
	opts := make([]config.YAMLOption, 0, len(files)+1)
	for _, f := range files {
		if !core.FileExists(f) {
			return nil, fmt.Errorf("configuration file '%s' does not exist", f)
		}
		opts = append(opts, config.File(f))
	}
	opts = append(opts, config.Permissive())
	yml, err := config.NewYAML(opts...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewManagerFromYAML(yml)
}
