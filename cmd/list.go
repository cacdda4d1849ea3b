package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rxhost/catalogctl/api"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the components the index exposes to hosts",
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

		idx, err := loader.LoadIndex()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tNAME\tVERSION\tPATH")
		for _, p := range idx.Components {
			doc, err := loader.LoadDocument(p)
			if err != nil {
				return err
			}
			if doc.IsTopic() {
				fmt.Fprintf(w, "topic\t-\t-\t%s\n", p)
				continue
			}
			var c api.Component
			if err := doc.Decode(&c); err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				c.Metadata.Type, c.Metadata.Name, c.Metadata.Version, p)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Catalog version %s, %d entries.\n", idx.Version, len(idx.Components))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
