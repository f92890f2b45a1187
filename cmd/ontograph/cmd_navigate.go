package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bioqueries/ontograph/query"
)

var (
	flagDepth     int
	flagWithSelf  bool
	flagDistances bool
)

func queryOptions() []query.Option {
	var opts []query.Option
	if flagWithSelf {
		opts = append(opts, query.WithSelf())
	}
	if flagDepth > 0 {
		opts = append(opts, query.WithMaxDepth(flagDepth))
	}
	return opts
}

func printIDs(cmd *cobra.Command, ids []string) {
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
}

func printDistances(cmd *cobra.Command, dist map[string]int) {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", id, dist[id])
	}
}

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "List the root terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadTarget(cmd)
		if err != nil {
			return err
		}
		roots, err := loaded.Engine.Roots()
		if err != nil {
			return err
		}
		printIDs(cmd, roots)
		return nil
	},
}

// neighbourCommand builds parents/children/siblings, which share flags and
// output shape.
func neighbourCommand(use, short string, run func(query.Engine, string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadTarget(cmd)
			if err != nil {
				return err
			}
			ids, err := run(loaded.Engine, args[0])
			if err != nil {
				return err
			}
			printIDs(cmd, ids)
			return nil
		},
	}
}

// closureCommand builds ancestors/descendants with the depth and distance
// flags.
func closureCommand(use, short string, up bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadTarget(cmd)
			if err != nil {
				return err
			}
			e := loaded.Engine
			if flagDistances {
				var dist map[string]int
				if up {
					dist, err = e.AncestorsWithDistance(args[0], queryOptions()...)
				} else {
					dist, err = e.DescendantsWithDistance(args[0], queryOptions()...)
				}
				if err != nil {
					return err
				}
				printDistances(cmd, dist)
				return nil
			}
			var ids []string
			if up {
				ids, err = e.Ancestors(args[0], queryOptions()...)
			} else {
				ids, err = e.Descendants(args[0], queryOptions()...)
			}
			if err != nil {
				return err
			}
			printIDs(cmd, ids)
			return nil
		},
	}
	cmd.Flags().IntVar(&flagDepth, "depth", 0, "layer limit (0 = unlimited)")
	cmd.Flags().BoolVar(&flagWithSelf, "with-self", false, "include the queried term")
	cmd.Flags().BoolVar(&flagDistances, "distances", false, "print per-term distances")
	return cmd
}

func init() {
	parentsCmd := neighbourCommand("parents <term-id>", "List a term's direct parents",
		func(e query.Engine, id string) ([]string, error) { return e.Parents(id, queryOptions()...) })
	childrenCmd := neighbourCommand("children <term-id>", "List a term's direct children",
		func(e query.Engine, id string) ([]string, error) { return e.Children(id, queryOptions()...) })
	siblingsCmd := neighbourCommand("siblings <term-id>", "List the terms sharing a parent with a term",
		func(e query.Engine, id string) ([]string, error) { return e.Siblings(id, queryOptions()...) })
	for _, c := range []*cobra.Command{parentsCmd, childrenCmd, siblingsCmd} {
		c.Flags().BoolVar(&flagWithSelf, "with-self", false, "include the queried term")
	}

	rootCmd.AddCommand(
		rootsCmd,
		parentsCmd,
		childrenCmd,
		siblingsCmd,
		closureCommand("ancestors <term-id>", "List a term's transitive ancestors", true),
		closureCommand("descendants <term-id>", "List a term's transitive descendants", false),
	)
}
