package cmd

import (
	"context"
	"fmt"

	"coopchain/controller"
	"coopchain/ledger"
	"coopchain/logx"

	"github.com/spf13/cobra"
)

var fetchFarmer string

var fetchCmd = &cobra.Command{
	Use:   "fetch [flags]",
	Short: "Fetch a farmer's price agreement from the chain",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFetch(); err != nil {
			logx.Error("FETCH CLI", err)
			fmt.Println("Error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchFarmer, "farmer", "f", "", "farmer account address (0x...)")
}

// Fetching is read-only: no wallet, no journal, no submission lock.
func runFetch() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctrl := controller.New(cfg, ledger.NewReader(cfg), nil, nil)

	a, err := ctrl.FetchAgreement(context.Background(), fetchFarmer)
	if err != nil {
		return err
	}
	printAgreement(a)
	return nil
}
