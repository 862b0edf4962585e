// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

// Copyright 2019 The Gaea Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"bytes"
	"fmt"
	"github.com/coreos/etcd/client"
	"github.com/pingcap/errors"
	cnf "go.uber.org/config"
	"strings"
	"sync"
	"time"
)

const (
	EtcdConfigProvider = "etcd"
	DefaultEtcdKey     = "/go-sharding/rule"
)

// EtcdSettings is read from the `config.etcd` section of the boot configuration.
type EtcdSettings struct {
	Endpoints string        `yaml:"endpoints"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Timeout   time.Duration `yaml:"timeout"`
	Key       string        `yaml:"key"`
}

type KeysAPIFactory func(settings *EtcdSettings) (client.KeysAPI, error)

// EtcdSource loads the rule document from an etcd key holding YAML.
type EtcdSource struct {
	mu      sync.Mutex
	factory KeysAPIFactory
	store   *EtcdStore
}

// NewEtcdSource creates the source, a nil factory dials the configured endpoints.
func NewEtcdSource(factory KeysAPIFactory) *EtcdSource {
	if factory == nil {
		factory = dialKeysAPI
	}
	return &EtcdSource{factory: factory}
}

func (c *EtcdSource) GetName() string {
	return EtcdConfigProvider
}

func (c *EtcdSource) Load(config cnf.Provider) (cnf.Value, error) {
	settings := &EtcdSettings{Key: DefaultEtcdKey}
	if err := config.Get("config.etcd").Populate(settings); err != nil {
		return cnf.Value{}, errors.Annotate(err, "bad etcd source settings")
	}
	if strings.TrimSpace(settings.Key) == "" {
		settings.Key = DefaultEtcdKey
	}

	store, err := c.open(settings)
	if err != nil {
		return cnf.Value{}, err
	}
	data, err := store.Read(settings.Key)
	if err != nil {
		return cnf.Value{}, errors.Annotatef(err, "read etcd key '%s' failed", settings.Key)
	}
	if len(data) == 0 {
		return cnf.Value{}, fmt.Errorf("etcd key '%s' holds no configuration", settings.Key)
	}
	yml, err := cnf.NewYAML(cnf.Source(bytes.NewReader(data)), cnf.Permissive())
	if err != nil {
		return cnf.Value{}, errors.Annotatef(err, "etcd key '%s' is not a valid yaml document", settings.Key)
	}
	logger.Infof("configuration loaded from etcd key '%s'", settings.Key)
	return yml.Get(cnf.Root), nil
}

// Store returns the store opened by the last Load, nil before the first Load.
func (c *EtcdSource) Store() *EtcdStore {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store
}

func (c *EtcdSource) open(settings *EtcdSettings) (*EtcdStore, error) {
	kapi, err := c.factory(settings)
	if err != nil {
		return nil, errors.Annotate(err, "connect to etcd failed")
	}
	store := NewEtcdStore(kapi, settings.Timeout)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Close()
	}
	c.store = store
	return store, nil
}

func (c *EtcdSource) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

func dialKeysAPI(settings *EtcdSettings) (client.KeysAPI, error) {
	endpoints := strings.Split(settings.Endpoints, ",")
	valid := endpoints[:0]
	for _, s := range endpoints {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			s = "http://" + s
		}
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return nil, errors.New("etcd endpoints are required")
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = time.Second * 10
	}
	c, err := client.New(client.Config{
		Endpoints:               valid,
		Transport:               client.DefaultTransport,
		Username:                settings.Username,
		Password:                settings.Password,
		HeaderTimeoutPerRequest: timeout,
	})
	if err != nil {
		return nil, err
	}
	return client.NewKeysAPI(c), nil
}
