// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/types"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	mu          sync.Mutex
	pluginItems = make(map[string]Plugin)
)

// Register 注册插件, 包名重复时 panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

func items() []Plugin {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Plugin, 0, len(names))
	for _, name := range names {
		list = append(list, pluginItems[name])
	}
	return list
}

// InitExec 注册所有插件的执行器, 可以重复调用
func InitExec(cfg *types.Exec) {
	for _, item := range items() {
		item.InitExec(cfg)
		mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
	}
}

// HasExec 是否有插件提供默认名为 name 的执行器
func HasExec(name string) bool {
	for _, item := range items() {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// AddCmd 把所有插件的命令加入 rootCmd
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}
