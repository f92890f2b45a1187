package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bioqueries/ontograph/query"
)

var flagTree bool

var pathCmd = &cobra.Command{
	Use:   "path <term-a> <term-b>",
	Short: "Shortest hierarchy path between two terms, ancestor first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadTarget(cmd)
		if err != nil {
			return err
		}
		path, err := loaded.Engine.PathBetween(args[0], args[1])
		if err != nil {
			return err
		}
		if len(path) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no hierarchy path between %s and %s\n", args[0], args[1])
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))
		return nil
	},
}

var lcaCmd = &cobra.Command{
	Use:   "lca <term-id>...",
	Short: "Lowest common ancestors of a set of terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadTarget(cmd)
		if err != nil {
			return err
		}
		lca, err := loaded.Engine.LowestCommonAncestors(args...)
		if err != nil {
			return err
		}
		printIDs(cmd, lca)
		return nil
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance <term-id>",
	Short: "Distance of a term from its farthest root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadTarget(cmd)
		if err != nil {
			return err
		}
		d, err := loaded.Engine.DistanceFromRoot(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

var trajectoriesCmd = &cobra.Command{
	Use:   "trajectories <term-id>",
	Short: "Every root-to-term path, root first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadTarget(cmd)
		if err != nil {
			return err
		}
		trs, err := loaded.Engine.TrajectoriesFromRoot(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if flagTree {
			fmt.Fprint(out, query.FormatTrajectoriesTree(trs))
			return nil
		}
		for _, tr := range trs {
			ids := make([]string, len(tr))
			for i, s := range tr {
				ids[i] = s.ID
			}
			fmt.Fprintln(out, strings.Join(ids, " -> "))
		}
		return nil
	},
}

func init() {
	trajectoriesCmd.Flags().BoolVar(&flagTree, "tree", false, "render merged trajectories as an ASCII tree")
	rootCmd.AddCommand(pathCmd, lcaCmd, distanceCmd, trajectoriesCmd)
}
