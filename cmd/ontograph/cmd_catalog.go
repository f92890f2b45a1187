package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the ontologies in the OBO Foundry registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLoader()
		if err != nil {
			return err
		}
		cat, err := l.Catalog(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range cat.IDs() {
			meta, err := cat.Metadata(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, meta.Title)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <ontology-id>",
	Short: "Show catalog metadata for one ontology",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLoader()
		if err != nil {
			return err
		}
		cat, err := l.Catalog(cmd.Context())
		if err != nil {
			return err
		}
		meta, err := cat.Metadata(args[0])
		if err != nil {
			return err
		}
		formats, err := cat.Formats(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:       %s\n", meta.ID)
		fmt.Fprintf(out, "title:    %s\n", meta.Title)
		if meta.Homepage != "" {
			fmt.Fprintf(out, "homepage: %s\n", meta.Homepage)
		}
		if meta.License != "" {
			fmt.Fprintf(out, "license:  %s\n", meta.License)
		}
		fmt.Fprintf(out, "formats:  %v\n", formats)
		if meta.Description != "" {
			fmt.Fprintf(out, "\n%s\n", meta.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd, infoCmd)
}
