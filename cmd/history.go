package cmd

import (
	"fmt"
	"time"

	"coopchain/logx"
	"coopchain/tlog"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List submitted operations, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistory(); err != nil {
			logx.Error("HISTORY CLI", err)
			fmt.Println("Error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	journal, err := tlog.Open(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer journal.Close()

	entries, err := journal.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Time.Format(time.DateTime), e.Hash)
	}
	return nil
}
