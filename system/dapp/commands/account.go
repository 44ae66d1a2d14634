// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arcade/account"
	dbm "github.com/33cn/arcade/common/db"
	"github.com/33cn/arcade/executor"
	"github.com/33cn/arcade/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Settlement token account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenesisCmd(),
		GetBalanceCmd(),
	)

	return cmd
}

// GenesisCmd 发行代币, 只能在本地节点上执行
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Issue settlement token to an address",
		Run:   genesis,
	}
	addGenesisFlags(cmd)
	return cmd
}

func addGenesisFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "address of account")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().Int64P("amount", "m", 0, "amount in smallest unit")
	cmd.MarkFlagRequired("amount")

	cmd.Flags().StringP("symbol", "s", "", "token symbol, default from config")
}

func genesis(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amount, _ := cmd.Flags().GetInt64("amount")
	symbol, _ := cmd.Flags().GetString("symbol")

	ctx := NewNodeCtx(cmd, func(node *Node) (interface{}, error) {
		if symbol == "" {
			symbol = node.Cfg.Exec.Symbol
		}
		receipt, err := node.Exec.ExecGenesis(func(kv dbm.KV) (*types.Receipt, error) {
			return genesisTo(kv, symbol, addr, amount)
		})
		if err != nil {
			return nil, err
		}
		out := &ReceiptOutput{Height: node.Exec.Height(), Ty: receipt.Ty}
		for _, l := range receipt.Logs {
			out.Logs = append(out.Logs, decodeLog(l))
		}
		return out, nil
	})
	ctx.Run()
}

func genesisTo(kv dbm.KV, symbol, addr string, amount int64) (*types.Receipt, error) {
	acc, err := account.NewAccountDB(symbol, kv)
	if err != nil {
		return nil, err
	}
	return acc.GenesisInit(addr, amount)
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("symbol", "s", "", "token symbol, default from config")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	symbol, _ := cmd.Flags().GetString("symbol")

	ctx := NewNodeCtx(cmd, func(node *Node) (interface{}, error) {
		if symbol == "" {
			symbol = node.Cfg.Exec.Symbol
		}
		return node.LoadAccount(symbol, addr)
	})
	ctx.Run()
}

// LoadAccount 读取已经写入的账户
func (n *Node) LoadAccount(symbol, addr string) (*types.Account, error) {
	acc, err := account.NewAccountDB(symbol, executor.NewStateDB(n.db, n.Exec.Height()))
	if err != nil {
		return nil, err
	}
	return acc.LoadAccount(addr), nil
}
