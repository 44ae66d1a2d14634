// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arcade/common"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/system/dapp/commands"
	"github.com/spf13/cobra"
)

// RngCmd rng command
func RngCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rng",
		Short: "Randomness oracle management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		RngInitCmd(),
		RngAuthorizeCmd(),
		RngRequestCmd(),
		RngFulfillCmd(),
		RngReadCmd(),
		RngRecordCmd(),
		RngConfigCmd(),
	)

	return cmd
}

func sendRngAction(cmd *cobra.Command, action *rt.RngAction) {
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		return node.SendTx(cmd, node.ExecName(rt.RngX), action.Encode())
	})
	ctx.Run()
}

// RngInitCmd init oracle
func RngInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set admin and oracle identity, admin must sign",
		Run:   rngInit,
	}
	addRngInitFlags(cmd)
	return cmd
}

func addRngInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("admin", "a", "", "admin address")
	cmd.MarkFlagRequired("admin")

	cmd.Flags().StringP("oracle", "o", "", "oracle address")
	cmd.MarkFlagRequired("oracle")
}

func rngInit(cmd *cobra.Command, args []string) {
	admin, _ := cmd.Flags().GetString("admin")
	oracle, _ := cmd.Flags().GetString("oracle")
	sendRngAction(cmd, &rt.RngAction{
		Ty:   rt.RngActionInit,
		Init: &rt.RngInit{Admin: admin, Oracle: oracle},
	})
}

// RngAuthorizeCmd add requester
func RngAuthorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Add an address to the read whitelist, admin must sign",
		Run:   rngAuthorize,
	}
	addRngAuthorizeFlags(cmd)
	return cmd
}

func addRngAuthorizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("admin", "a", "", "admin address")
	cmd.MarkFlagRequired("admin")

	cmd.Flags().StringP("requester", "r", "", "requester address, may be an executor address")
	cmd.MarkFlagRequired("requester")
}

func rngAuthorize(cmd *cobra.Command, args []string) {
	admin, _ := cmd.Flags().GetString("admin")
	requester, _ := cmd.Flags().GetString("requester")
	sendRngAction(cmd, &rt.RngAction{
		Ty:        rt.RngActionAuthorize,
		Authorize: &rt.RngAuthorize{Admin: admin, Requester: requester},
	})
}

// RngRequestCmd register request
func RngRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Register a pending randomness request",
		Run:   rngRequest,
	}
	addRngRequestFlags(cmd)
	return cmd
}

func addRngRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("requester", "r", "", "requester address")
	cmd.MarkFlagRequired("requester")

	cmd.Flags().Uint64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
}

func rngRequest(cmd *cobra.Command, args []string) {
	requester, _ := cmd.Flags().GetString("requester")
	id, _ := cmd.Flags().GetUint64("id")
	sendRngAction(cmd, &rt.RngAction{
		Ty:      rt.RngActionRequest,
		Request: &rt.RngRequest{Requester: requester, RequestID: id},
	})
}

// RngFulfillCmd submit seed
func RngFulfillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill",
		Short: "Submit the 32 byte seed of a request, oracle must sign",
		Run:   rngFulfill,
	}
	addRngFulfillFlags(cmd)
	return cmd
}

func addRngFulfillFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("caller", "c", "", "oracle address")
	cmd.MarkFlagRequired("caller")

	cmd.Flags().Uint64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")

	cmd.Flags().StringP("seed", "s", "", "seed in hex, 32 bytes")
	cmd.MarkFlagRequired("seed")
}

func rngFulfill(cmd *cobra.Command, args []string) {
	caller, _ := cmd.Flags().GetString("caller")
	id, _ := cmd.Flags().GetUint64("id")
	seedHex, _ := cmd.Flags().GetString("seed")
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		seed, err := common.FromHex(seedHex)
		if err != nil {
			return nil, err
		}
		tx := rt.NewFulfillTx(node.ExecName(rt.RngX), caller, id, seed, 0)
		return node.SendTx(cmd, tx.Execer, tx.Payload)
	})
	ctx.Run()
}

// RngReadCmd read result by tx
func RngReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a fulfilled value, caller must be whitelisted and sign",
		Run:   rngRead,
	}
	addRngReadFlags(cmd)
	return cmd
}

func addRngReadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("caller", "c", "", "caller address")
	cmd.MarkFlagRequired("caller")

	cmd.Flags().Uint64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
}

func rngRead(cmd *cobra.Command, args []string) {
	caller, _ := cmd.Flags().GetString("caller")
	id, _ := cmd.Flags().GetUint64("id")
	sendRngAction(cmd, &rt.RngAction{
		Ty:   rt.RngActionRead,
		Read: &rt.RngRead{Caller: caller, RequestID: id},
	})
}

// RngRecordCmd query record
func RngRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Query the record of a request id",
		Run:   rngRecord,
	}
	cmd.Flags().Uint64P("id", "i", 0, "request id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func rngRecord(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("id")
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		return node.Query(node.ExecName(rt.RngX), rt.FuncNameGetRecord, &rt.ReqRecord{RequestID: id})
	})
	ctx.Run()
}

// RngConfigCmd query config
func RngConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query oracle config",
		Run:   rngConfig,
	}
	return cmd
}

func rngConfig(cmd *cobra.Command, args []string) {
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		return node.Query(node.ExecName(rt.RngX), rt.FuncNameGetConfig, nil)
	})
	ctx.Run()
}
