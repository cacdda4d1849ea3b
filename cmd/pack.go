package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/internal/snapshot"
)

var packCmd = &cobra.Command{
	Use:   "pack [output.db]",
	Short: "Pack the validated catalog into a SQLite snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader, err := newLoader(cfg)
		if err != nil {
			return err
		}

		_ = os.Remove(output) // Overwrite

		start := time.Now()
		report, written, err := snapshot.Pack(loader, lintOptions(cfg), output)
		if report != nil {
			for _, f := range report.Findings {
				fmt.Println(f)
			}
		}
		if err != nil {
			return err
		}
		fmt.Printf("Packed %d document(s) into %s in %v.\n", written, output, time.Since(start))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
