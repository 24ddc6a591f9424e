package cmd

import (
	"fmt"

	"coopchain/agreement"
	"coopchain/config"
	"coopchain/controller"
	"coopchain/ledger"
	"coopchain/tlog"
	"coopchain/units"
	"coopchain/wallet"
)

func resolveConfig() (config.ClientConfig, error) {
	var cfg config.ClientConfig
	if globalCfg.ConfigPath != "" {
		loaded, err := config.LoadClientConfig(globalCfg.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	} else {
		cfg = config.Default()
	}

	if globalCfg.NodeURL != "" {
		cfg.NodeURL = globalCfg.NodeURL
	}
	if globalCfg.WalletURL != "" {
		cfg.WalletURL = globalCfg.WalletURL
	}
	if globalCfg.ModuleAddress != "" {
		cfg.ModuleAddress = globalCfg.ModuleAddress
	}
	if globalCfg.JournalPath != "" {
		cfg.JournalPath = globalCfg.JournalPath
	}
	return cfg, nil
}

// newController wires a controller with the real node reader, wallet bridge
// and audit journal. The returned cleanup closes both.
func newController(cfg config.ClientConfig) (*controller.Controller, func(), error) {
	w := wallet.NewBridge(cfg.WalletURL)
	journal, err := tlog.Open(cfg.JournalPath)
	if err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}
	ctrl := controller.New(cfg, ledger.NewReader(cfg), w, journal)
	cleanup := func() {
		journal.Close()
		w.Close()
	}
	return ctrl, cleanup, nil
}

func printAgreement(a *agreement.PriceAgreement) {
	if a == nil {
		fmt.Println("No agreement found at that farmer address.")
		return
	}
	status := "awaiting payment"
	if a.IsFulfilled {
		status = "fulfilled"
	}
	fmt.Printf("Min price:  %s octas/ton (%s APT)\n", a.MinimumPrice.Dec(), units.FromOctas(a.MinimumPrice))
	fmt.Printf("Quantity:   %s tons\n", a.QuantityTons.Dec())
	fmt.Printf("Total:      %s octas (%s APT)\n", a.TotalValue.Dec(), units.FromOctas(a.TotalValue))
	fmt.Printf("Buyer:      %s\n", a.BuyerAddress)
	fmt.Printf("Status:     %s\n", status)
}
