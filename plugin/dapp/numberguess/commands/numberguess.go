// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/arcade/common/address"
	gt "github.com/33cn/arcade/plugin/dapp/numberguess/types"
	rt "github.com/33cn/arcade/plugin/dapp/rng/types"
	"github.com/33cn/arcade/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NumberGuessCmd numberguess command
func NumberGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numberguess",
		Short: "Number guess game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		NumberGuessInitCmd(),
		NumberGuessStartCmd(),
		NumberGuessGuessCmd(),
		NumberGuessResolveCmd(),
		NumberGuessQueryCmd(),
		NumberGuessConfigCmd(),
	)

	return cmd
}

func sendNumberGuessAction(cmd *cobra.Command, action *gt.NumberGuessAction) {
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		return node.SendTx(cmd, node.ExecName(gt.NumberGuessX), action.Encode())
	})
	ctx.Run()
}

// NumberGuessInitCmd init engine
func NumberGuessInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set engine config once, admin must sign",
		Run:   numberGuessInit,
	}
	addNumberGuessInitFlags(cmd)
	return cmd
}

func addNumberGuessInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("admin", "a", "", "admin address")
	cmd.MarkFlagRequired("admin")

	cmd.Flags().StringP("rng", "r", "", "rng contract address, default the configured rng executor")
	cmd.Flags().StringP("pool", "p", "", "prize pool address, default admin")
	cmd.Flags().StringP("symbol", "s", "", "settlement token symbol, default from config")

	cmd.Flags().Int64P("min", "n", 0, "min wager")
	cmd.MarkFlagRequired("min")

	cmd.Flags().Int64P("max", "x", 0, "max wager")
	cmd.MarkFlagRequired("max")

	cmd.Flags().Int64P("bps", "b", 0, "house edge in basis points, 0-10000")
}

func numberGuessInit(cmd *cobra.Command, args []string) {
	admin, _ := cmd.Flags().GetString("admin")
	rng, _ := cmd.Flags().GetString("rng")
	pool, _ := cmd.Flags().GetString("pool")
	symbol, _ := cmd.Flags().GetString("symbol")
	minWager, _ := cmd.Flags().GetInt64("min")
	maxWager, _ := cmd.Flags().GetInt64("max")
	bps, _ := cmd.Flags().GetInt64("bps")

	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		if rng == "" {
			rng = address.ExecAddress(node.ExecName(rt.RngX))
		}
		if pool == "" {
			pool = admin
		}
		if symbol == "" {
			symbol = node.Cfg.Exec.Symbol
		}
		action := &gt.NumberGuessAction{
			Ty: gt.NumberGuessActionInit,
			Init: &gt.NumberGuessInit{
				Admin:           admin,
				RngContract:     rng,
				PrizePool:       pool,
				SettlementToken: symbol,
				MinWager:        minWager,
				MaxWager:        maxWager,
				HouseEdgeBps:    bps,
			},
		}
		return node.SendTx(cmd, node.ExecName(gt.NumberGuessX), action.Encode())
	})
	ctx.Run()
}

// NumberGuessStartCmd start game
func NumberGuessStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game, player must sign",
		Run:   numberGuessStart,
	}
	addNumberGuessStartFlags(cmd)
	return cmd
}

func addNumberGuessStartFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("player", "p", "", "player address")
	cmd.MarkFlagRequired("player")

	cmd.Flags().Uint64P("gameID", "g", 0, "game id, also the randomness request id")
	cmd.MarkFlagRequired("gameID")

	cmd.Flags().Uint32P("min", "n", 0, "min number")
	cmd.MarkFlagRequired("min")

	cmd.Flags().Uint32P("max", "x", 0, "max number")
	cmd.MarkFlagRequired("max")

	cmd.Flags().Int64P("wager", "w", 0, "wager in smallest unit")
	cmd.MarkFlagRequired("wager")
}

func numberGuessStart(cmd *cobra.Command, args []string) {
	player, _ := cmd.Flags().GetString("player")
	gameID, _ := cmd.Flags().GetUint64("gameID")
	min, _ := cmd.Flags().GetUint32("min")
	max, _ := cmd.Flags().GetUint32("max")
	wager, _ := cmd.Flags().GetInt64("wager")
	sendNumberGuessAction(cmd, &gt.NumberGuessAction{
		Ty: gt.NumberGuessActionStart,
		Start: &gt.GameStart{
			Player: player,
			Min:    min,
			Max:    max,
			Wager:  wager,
			GameID: gameID,
		},
	})
}

// NumberGuessGuessCmd submit guess
func NumberGuessGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Submit the guess of a game, player must sign",
		Run:   numberGuessGuess,
	}
	addNumberGuessGuessFlags(cmd)
	return cmd
}

func addNumberGuessGuessFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")

	cmd.Flags().Uint32P("number", "n", 0, "guessed number")
	cmd.MarkFlagRequired("number")
}

func numberGuessGuess(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	number, _ := cmd.Flags().GetUint32("number")
	sendNumberGuessAction(cmd, &gt.NumberGuessAction{
		Ty:    gt.NumberGuessActionGuess,
		Guess: &gt.GameGuess{GameID: gameID, Guess: number},
	})
}

// NumberGuessResolveCmd resolve game
func NumberGuessResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a guessed game after the seed is fulfilled",
		Run:   numberGuessResolve,
	}
	cmd.Flags().Uint64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")
	return cmd
}

func numberGuessResolve(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	sendNumberGuessAction(cmd, &gt.NumberGuessAction{
		Ty:      gt.NumberGuessActionResolve,
		Resolve: &gt.GameResolve{GameID: gameID},
	})
}

// GameOutput 输出时带上状态名
type GameOutput struct {
	*gt.Game
	StatusName string `json:"statusName"`
}

// NumberGuessQueryCmd query game
func NumberGuessQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Query a game by id",
		Run:   numberGuessQuery,
	}
	cmd.Flags().Uint64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")
	return cmd
}

func numberGuessQuery(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetUint64("gameID")
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		reply, err := node.Query(node.ExecName(gt.NumberGuessX), gt.FuncNameGetGame, &gt.ReqGame{GameID: gameID})
		if err != nil {
			return nil, err
		}
		game := reply.(*gt.Game)
		return &GameOutput{Game: game, StatusName: gt.StatusName(game.Status)}, nil
	})
	ctx.Run()
}

// NumberGuessConfigCmd query config
func NumberGuessConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query engine config",
		Run:   numberGuessConfig,
	}
	return cmd
}

func numberGuessConfig(cmd *cobra.Command, args []string) {
	ctx := commands.NewNodeCtx(cmd, func(node *commands.Node) (interface{}, error) {
		return node.Query(node.ExecName(gt.NumberGuessX), gt.FuncNameGetConfig, nil)
	})
	ctx.Run()
}
