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
	"github.com/endink/go-sharding-route/core"
	"github.com/endink/go-sharding-route/logging"
	"github.com/pingcap/errors"
	"go.uber.org/config"
	"os"
	"path/filepath"
)

var logger = logging.GetLogger("config")

type Manager interface {
	GetSettings() *Settings
	Source() Source
	Close() error
}

type cnfManager struct {
	Provider string `yaml:"provider"`
	source   Source
	current  config.Value
	settings *Settings
}

func (mgr *cnfManager) GetSettings() *Settings {
	return mgr.settings
}

func (mgr *cnfManager) Source() Source {
	return mgr.source
}

func (mgr *cnfManager) Close() error {
	return mgr.source.Close()
}

func (mgr *cnfManager) initialize() error {
	settings := &Settings{}
	if err := mgr.current.Populate(settings); err != nil {
		return errors.Annotate(err, "populate sharding settings failed")
	}
	settings.normalize()
	if err := settings.Validate(); err != nil {
		return errors.Trace(err)
	}
	mgr.settings = settings
	logger.Infof("sharding settings loaded from '%s' source: %d table rules, %d algorithms",
		mgr.source.GetName(), len(settings.Tables), len(settings.Algorithms))
	return nil
}

// DefaultConfigFileLocations returns the searched files, later files override earlier ones.
func DefaultConfigFileLocations() []string {
	files := make([]string, 0, 3)
	if !core.IsWindows() {
		files = append(files, "/etc/go-sharding/config.yaml", "/etc/go-sharding/config.yml")
	}
	dir, err := os.Getwd()
	if err == nil {
		files = append(files, filepath.Join(dir, "config.yaml"))
	} else {
		files = append(files, "config.yaml")
	}
	return files
}
