package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/internal/conformance"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the release conformance checks against the React wrapper",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loader, err := newLoader(cfg)
		if err != nil {
			return err
		}

		fixture, err := conformance.LoadFixture(loader)
		if err != nil {
			return err
		}

		results := conformance.Run(fixture)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("FAIL %s: %v\n", r.Name, r.Err)
				continue
			}
			fmt.Printf("ok   %s\n", r.Name)
		}

		passed := conformance.Passed(results)
		fmt.Printf("%d/%d checks passed\n", passed, len(results))
		if passed != len(results) {
			return fmt.Errorf("conformance failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
