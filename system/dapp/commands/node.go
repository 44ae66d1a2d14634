// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 命令行的公共部分: 打开本地状态库, 签名并执行交易
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/33cn/arcade/common"
	"github.com/33cn/arcade/common/crypto"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/executor"
	"github.com/33cn/arcade/metrics"
	"github.com/33cn/arcade/pluginmgr"
	"github.com/33cn/arcade/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Node 本地节点: 配置, 状态库以及执行器
type Node struct {
	Cfg  *types.Config
	Exec *executor.Executor
	db   dbm.DB
}

// OpenNode 按 --conf 指定的配置打开状态库
func OpenNode(cmd *cobra.Command) (*Node, error) {
	path, _ := cmd.Flags().GetString("conf")
	cfg, err := types.InitCfg(path)
	if err != nil {
		return nil, err
	}
	return NewNode(cfg)
}

// NewNode new node
func NewNode(cfg *types.Config) (*Node, error) {
	log.SetFileLog(cfg.Log)
	metrics.StartMetrics(cfg.Metrics)
	pluginmgr.InitExec(cfg.Exec)
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", cfg.Store.Driver)
	}
	exec, err := executor.New(db, cfg.Exec)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Node{Cfg: cfg, Exec: exec, db: db}, nil
}

// Close close db
func (n *Node) Close() {
	n.db.Close()
}

// ExecName 默认执行器名在本节点上的实际名字
func (n *Node) ExecName(name string) string {
	return n.Cfg.Exec.ExecName(name)
}

// SendTx 用 --key 指定的私钥依次签名并执行
func (n *Node) SendTx(cmd *cobra.Command, execer string, payload []byte) (*ReceiptOutput, error) {
	keys, _ := cmd.Flags().GetStringSlice("key")
	tx := types.NewTransaction(execer, payload, time.Now().UnixNano())
	for _, key := range keys {
		priv, err := parsePrivKey(key)
		if err != nil {
			return nil, err
		}
		tx.Sign(types.SECP256K1, priv)
	}
	receipt, err := n.Exec.Exec(tx)
	if err != nil {
		return nil, err
	}
	out := &ReceiptOutput{
		TxHash: common.ToHex(tx.Hash()),
		Height: n.Exec.Height(),
		Ty:     receipt.Ty,
	}
	for _, l := range receipt.Logs {
		out.Logs = append(out.Logs, decodeLog(l))
	}
	return out, nil
}

// Query 只读查询, req 编码后作为参数
func (n *Node) Query(execer, funcName string, req interface{}) (interface{}, error) {
	var params []byte
	if req != nil {
		params = types.Encode(req)
	}
	return n.Exec.Query(execer, funcName, params)
}

func parsePrivKey(key string) (crypto.PrivKey, error) {
	b, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "parse key")
	}
	c, err := crypto.New(crypto.NameSecp256k1)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(b)
}

// Callback 在打开的节点上执行
type Callback func(node *Node) (interface{}, error)

// NodeCtx 一次命令的执行上下文
type NodeCtx struct {
	cmd *cobra.Command
	fn  Callback
}

// NewNodeCtx new node ctx
func NewNodeCtx(cmd *cobra.Command, fn Callback) *NodeCtx {
	return &NodeCtx{cmd: cmd, fn: fn}
}

// RunResult 打开节点, 执行之后关闭
func (c *NodeCtx) RunResult() (interface{}, error) {
	node, err := OpenNode(c.cmd)
	if err != nil {
		return nil, err
	}
	defer node.Close()
	return c.fn(node)
}

// Run 执行并以 json 格式输出结果
func (c *NodeCtx) Run() {
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
