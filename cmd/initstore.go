package cmd

import (
	"context"
	"fmt"

	"coopchain/logx"

	"github.com/spf13/cobra"
)

var initStoreCmd = &cobra.Command{
	Use:   "init-store",
	Short: "Register the APT coin store for the connected account",
	Long: `Registers the AptosCoin store so the account can receive payments.
The on-chain module treats a repeated registration as a no-op.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInitStore(); err != nil {
			logx.Error("INIT-STORE CLI", err)
			fmt.Println("Error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(initStoreCmd)
}

func runInitStore() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctrl, cleanup, err := newController(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	addr, err := ctrl.Connect(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Connected:", addr)

	hash, err := ctrl.InitCoinStore(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Coin store initialized. tx:", hash)
	return nil
}
