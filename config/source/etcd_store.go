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
	"context"
	"errors"
	"github.com/coreos/etcd/client"
	"github.com/endink/go-sharding-route/logging"
	"sync"
	"time"
)

// ErrClosedEtcdClient means etcd client closed
var ErrClosedEtcdClient = errors.New("use of closed etcd client")

var logger = logging.GetLogger("config-source")

// EtcdStore reads and writes configuration documents kept in etcd keys.
type EtcdStore struct {
	sync.Mutex
	kapi client.KeysAPI

	closed  bool
	timeout time.Duration
}

func NewEtcdStore(kapi client.KeysAPI, timeout time.Duration) *EtcdStore {
	return &EtcdStore{
		kapi:    kapi,
		timeout: timeout,
	}
}

// Close close etcd client
func (c *EtcdStore) Close() error {
	c.Lock()
	defer c.Unlock()
	c.closed = true
	return nil
}

func (c *EtcdStore) contextWithTimeout() (context.Context, context.CancelFunc) {
	if c.timeout == 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.timeout)
}

func isErrNoNode(err error) bool {
	var e client.Error
	if errors.As(err, &e) {
		return e.Code == client.ErrorCodeKeyNotFound
	}
	return false
}

func isErrNodeExists(err error) bool {
	var e client.Error
	if errors.As(err, &e) {
		return e.Code == client.ErrorCodeNodeExist
	}
	return false
}

// Create create path with data, it fails when the key already exists.
func (c *EtcdStore) Create(path string, data []byte) error {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return ErrClosedEtcdClient
	}
	ctx, cancel := c.contextWithTimeout()
	defer cancel()
	logger.Debugf("etcd create node %s", path)
	_, err := c.kapi.Set(ctx, path, string(data), &client.SetOptions{PrevExist: client.PrevNoExist})
	if err != nil {
		logger.Debugf("etcd create node %s failed: %s", path, err)
		return err
	}
	return nil
}

// Update update path with data
func (c *EtcdStore) Update(path string, data []byte) error {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return ErrClosedEtcdClient
	}
	ctx, cancel := c.contextWithTimeout()
	defer cancel()
	logger.Debugf("etcd update node %s", path)
	_, err := c.kapi.Set(ctx, path, string(data), &client.SetOptions{PrevExist: client.PrevIgnore})
	if err != nil {
		logger.Debugf("etcd update node %s failed: %s", path, err)
		return err
	}
	return nil
}

// Delete delete path, a missing key is not an error.
func (c *EtcdStore) Delete(path string) error {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return ErrClosedEtcdClient
	}
	ctx, cancel := c.contextWithTimeout()
	defer cancel()
	logger.Debugf("etcd delete node %s", path)
	_, err := c.kapi.Delete(ctx, path, nil)
	if err != nil && !isErrNoNode(err) {
		logger.Debugf("etcd delete node %s failed: %s", path, err)
		return err
	}
	return nil
}

// Read read path data, a missing key or a directory yields nil data.
func (c *EtcdStore) Read(path string) ([]byte, error) {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return nil, ErrClosedEtcdClient
	}
	ctx, cancel := c.contextWithTimeout()
	defer cancel()
	logger.Debugf("etcd read node %s", path)
	r, err := c.kapi.Get(ctx, path, nil)
	if err != nil && !isErrNoNode(err) {
		return nil, err
	} else if r == nil || r.Node == nil || r.Node.Dir {
		return nil, nil
	} else {
		return []byte(r.Node.Value), nil
	}
}
