// Package encourage contains the encouragement library commands.
package encourage

import (
	"fmt"

	"github.com/spf13/cobra"

	"baiyun/piggyvault/cmd/root"
)

// Cmd prints a random encouragement; subcommands manage the library.
var Cmd = &cobra.Command{
	Use:   "encourage",
	Short: "Print a random encouragement message",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(root.NewLibrary().Random())
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a custom encouragement message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := root.NewLibrary().Add(args[0]); err != nil {
			return err
		}
		fmt.Println("Message added")
		return nil
	},
}

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List installed encouragement packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := root.NewLibrary().ListPacks()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No packs installed")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <pack-file>",
	Short: "Import a .hl encouragement pack into the custom library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := root.NewLibrary().Import(args[0])
		if err != nil {
			return fmt.Errorf("failed to import pack: %w", err)
		}
		fmt.Printf("Imported %d new messages\n", added)
		return nil
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Copy .hl packs found in the configured search directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		copied, err := root.NewLibrary().Discover(root.Cfg.Encouragement.SearchDirs)
		if err != nil {
			return err
		}
		fmt.Printf("Discovered %d new packs\n", copied)
		return nil
	},
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(packsCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(discoverCmd)
}
