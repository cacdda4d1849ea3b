package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/internal/lint"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the component catalog against its index",
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

		report, err := lint.New(loader, lintOptions(cfg)).Run()
		if err != nil {
			return err
		}

		for _, f := range report.Findings {
			fmt.Println(f)
		}
		if !report.OK() {
			return fmt.Errorf("catalog validation failed: %d error(s)", len(report.Errors()))
		}
		fmt.Printf("Validated %d component(s), %d topic document(s) skipped.\n",
			report.Validated, report.Topics)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
