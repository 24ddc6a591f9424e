package cmd

import (
	"os"

	"coopchain/logx"

	"github.com/spf13/cobra"
)

type globalConfig struct {
	ConfigPath    string
	NodeURL       string
	WalletURL     string
	ModuleAddress string
	JournalPath   string
}

var globalCfg globalConfig

var rootCmd = &cobra.Command{
	Use:   "coopchain",
	Short: "Farmer co-op price agreement CLI",
	Long:  "Command line client for negotiating and settling on-chain crop-price agreements.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalCfg.ConfigPath, "config", "c", "", "path to client.yml (defaults to testnet settings)")
	rootCmd.PersistentFlags().StringVar(&globalCfg.NodeURL, "node-url", "", "fullnode REST base URL override")
	rootCmd.PersistentFlags().StringVar(&globalCfg.WalletURL, "wallet-url", "", "wallet bridge endpoint override")
	rootCmd.PersistentFlags().StringVar(&globalCfg.ModuleAddress, "module-address", "", "FarmerCoOp module account override")
	rootCmd.PersistentFlags().StringVar(&globalCfg.JournalPath, "journal", "", "audit journal file override")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
