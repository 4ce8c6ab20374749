package main

import (
	"fmt"
	"os"

	"baiyun/piggyvault/cmd/account"
	"baiyun/piggyvault/cmd/backup"
	"baiyun/piggyvault/cmd/configcmd"
	"baiyun/piggyvault/cmd/encourage"
	"baiyun/piggyvault/cmd/history"
	"baiyun/piggyvault/cmd/root"
	"baiyun/piggyvault/cmd/target"
	"baiyun/piggyvault/cmd/transaction"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(account.Cmd)
	root.Cmd.AddCommand(account.StatusCmd)
	root.Cmd.AddCommand(transaction.DepositCmd)
	root.Cmd.AddCommand(transaction.WithdrawCmd)
	root.Cmd.AddCommand(target.Cmd)
	root.Cmd.AddCommand(target.ModeCmd)
	root.Cmd.AddCommand(target.ResetCmd)
	root.Cmd.AddCommand(history.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(encourage.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
