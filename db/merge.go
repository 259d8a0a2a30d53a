package db

import (
	"fmt"
	"log/slog"

	"cyclehud/cycle"
	"cyclehud/model"

	"github.com/schollz/progressbar/v3"
)

// Merge unions the rotations of the input stores into out, keeping
// first-seen order per slot and deduplicating by identity. Useful when a
// player consolidates cycle databases from several profiles.
func Merge(inputs []*SQLiteStore, out *SQLiteStore) error {
	merged := cycle.NewWithMaxLength(cycle.DefaultMaxLength * len(inputs))

	bar := progressbar.Default(int64(len(inputs)), "Merging cycle stores...")

	for i, input := range inputs {
		data, err := input.Load()
		if err != nil {
			return fmt.Errorf("could not load input store %d: %w", i, err)
		}

		for _, slot := range model.SlotActions {
			combined := append(merged.Entries(slot), data.Entries(slot)...)
			// Replace dedupes by identity, so overlap between stores is fine.
			merged.Replace(slot, combined)
		}

		if err := bar.Add(1); err != nil {
			slog.Error("could not update progress bar", "error", err)
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return out.Save(merged)
}
