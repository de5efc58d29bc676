package main

import (
	"github.com/spf13/cobra"
)

var dumpSection string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the records as YAML",
	Long: `dump prints the records the page is rendered from. The output of a full
dump can be edited and passed back with --content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}
		b, err := store.Marshal(dumpSection)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpSection, "section", "s", "", "print a single section (profile, nav, stats, skills, projects, experience, education, certificates, achievements)")
	rootCmd.AddCommand(dumpCmd)
}
