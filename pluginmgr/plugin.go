// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/arcade/types"
	"github.com/spf13/cobra"
)

// Plugin 一个 dapp 插件: 执行器以及命令行
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器的默认名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *types.Exec)
	AddCmd(rootCmd *cobra.Command)
}

// PluginBase 插件的通用实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string)
	Cmd      func() *cobra.Command
}

// GetName get name
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName get executor name
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec 按配置的名字注册执行器
func (p *PluginBase) InitExec(cfg *types.Exec) {
	if p.Exec == nil {
		return
	}
	name := p.ExecName
	if cfg != nil {
		name = cfg.ExecName(p.ExecName)
	}
	p.Exec(name)
}

// AddCmd add command
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
