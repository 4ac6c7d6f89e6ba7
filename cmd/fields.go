package cmd

import (
	"fmt"

	"github.com/jfmyers9/kavalock/internal/lockfield"
	"github.com/spf13/cobra"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List lockable metadata fields",
	Long: `List every metadata field kavalock can lock, with the metadata key
and the lock-flag key used by the Kavita API.

Either the label or the key can be passed to 'kavalock lock --fields',
case-insensitively.`,
	Run: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) {
	rows := make([][]string, 0, len(lockfield.Catalog))
	for _, spec := range lockfield.Catalog {
		rows = append(rows, []string{spec.Label, spec.DataKey, spec.LockKey})
	}
	fmt.Println(renderTable([]string{"Field", "Key", "Lock Key"}, rows))
}
