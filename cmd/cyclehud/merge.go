package cyclehud

import (
	"fmt"
	"os"

	"cyclehud/db"

	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge cycle stores from several profiles into one",
	Long: `Given two or more cycle stores, create a new one holding the union of their
rotations, keeping first-seen order and dropping duplicate items per slot.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if len(mergeInputs) < 2 {
			return fmt.Errorf("expected at least 2 input files, got %d", len(mergeInputs))
		}

		inputs := make([]*db.SQLiteStore, len(mergeInputs))
		for i, fn := range mergeInputs {
			store, err := db.ConnectDB(fn)
			if err != nil {
				return err
			}
			defer store.Close()
			inputs[i] = store
		}

		if _, err := os.Stat(mergeOutput); err == nil {
			return fmt.Errorf("output file %s already exists", mergeOutput)
		}

		output, err := db.ConnectDB(mergeOutput)
		if err != nil {
			return err
		}
		defer output.Close()

		return db.Merge(inputs, output)
	},
}

var (
	mergeInputs []string
	mergeOutput string
)

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(
		&mergeInputs,
		"file",
		"f",
		[]string{},
		"List of cycle stores to merge")

	mergeCmd.Flags().StringVarP(
		&mergeOutput,
		"out",
		"o",
		"./merged.sqlite",
		"Output path for the merged store")
}
