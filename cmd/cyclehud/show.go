package cyclehud

import (
	"fmt"
	"log"

	"cyclehud/db"
	"cyclehud/model"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:              "show",
	Short:            "Print the stored cycle rotations",
	Long:             `Reads a cycle store and prints each slot's rotation in order, top first.`,
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Printf("Config file: %s\n", viper.ConfigFileUsed())

		store, err := db.ConnectDB(showStorePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", showStorePath, err)
		}
		defer store.Close()

		data, err := store.Load()
		if err != nil {
			return fmt.Errorf("could not load cycle data: %w", err)
		}

		for _, slot := range model.SlotActions {
			entries := data.Entries(slot)
			fmt.Printf("%s (%d):\n", slot, len(entries))
			for i, entry := range entries {
				marker := "  "
				if i == 0 {
					marker = "> "
				}
				fmt.Printf("  %s%s [%s]\n", marker, entry.Name, entry.FormSpec)
			}
		}

		return nil
	},
}

var showStorePath string

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(
		&showStorePath,
		"storage",
		"s",
		"./cycles.sqlite",
		"Path to the cycle store")
}
