package cmd

import (
	"context"
	"fmt"

	"coopchain/logx"

	"github.com/spf13/cobra"
)

var fulfillFarmer string

var fulfillCmd = &cobra.Command{
	Use:   "fulfill [flags]",
	Short: "Pay and settle a farmer's price agreement (buyer)",
	Long: `Fetches the agreement under the farmer address, then pays exactly the
total_value the ledger recorded. The fulfilled status shown afterwards is
re-read from the chain, never assumed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFulfill(); err != nil {
			logx.Error("FULFILL CLI", err)
			fmt.Println("Error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fulfillCmd)

	fulfillCmd.Flags().StringVarP(&fulfillFarmer, "farmer", "f", "", "farmer account address (0x...)")
}

func runFulfill() error {
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

	if _, err := ctrl.FetchAgreement(ctx, fulfillFarmer); err != nil {
		return err
	}
	hash, err := ctrl.FulfillAgreement(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Payment sent. tx:", hash)
	printAgreement(ctrl.LastAgreement())
	return nil
}
