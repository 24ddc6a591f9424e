package cmd

import (
	"context"
	"fmt"

	"coopchain/logx"

	"github.com/spf13/cobra"
)

type createConfig struct {
	Price    string
	Quantity string
	Buyer    string
}

var createCfg createConfig

var createCmd = &cobra.Command{
	Use:   "create [flags]",
	Short: "Create a price agreement (farmer)",
	Long: `Creates a PriceAgreement resource under the connected farmer account.
The price is entered in APT per ton and converted to octas exactly
(1 APT = 100,000,000 octas); no floating point is involved.

Examples:
  # Promise 4 tons at a minimum of 2.5 APT per ton to buyer 0xB...
  coopchain create -p 2.5 -q 4 -b 0xB0b`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCreate(); err != nil {
			logx.Error("CREATE CLI", err)
			fmt.Println("Error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createCfg.Price, "price", "p", "", "minimum price in APT per ton")
	createCmd.Flags().StringVarP(&createCfg.Quantity, "quantity", "q", "", "quantity in tons")
	createCmd.Flags().StringVarP(&createCfg.Buyer, "buyer", "b", "", "buyer account address (0x...)")
}

func runCreate() error {
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

	hash, err := ctrl.CreateAgreement(ctx, createCfg.Price, createCfg.Quantity, createCfg.Buyer)
	if err != nil {
		return err
	}
	fmt.Println("Agreement created on-chain. tx:", hash)
	return nil
}
