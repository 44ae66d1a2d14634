// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/arcade/common/address"
	"github.com/33cn/arcade/types"
)

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
)

// Register register driver in name
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if len(name) == 0 {
		panic("empty name string")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[address.ExecAddress(name)] = name
}

// IsRegistered name 是否已经注册
func IsRegistered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registedExecDriver[name]
	return ok
}

// LoadDriver load driver
func LoadDriver(name string) (Driver, error) {
	mu.RLock()
	create, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrExecNotFound
	}
	d := create()
	d.SetName(name)
	return d, nil
}

// LookupExecName 合约地址对应的执行器名
func LookupExecName(addr string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	name, ok := execAddressNameMap[addr]
	if !ok {
		return "", types.ErrExecNotFound
	}
	return name, nil
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string) bool {
	_, err := LookupExecName(addr)
	return err == nil
}
