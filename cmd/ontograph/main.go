// Command ontograph answers structural queries over biological ontologies
// from the command line: catalog lookup, roots, parents/children,
// ancestor/descendant closures, siblings, shortest paths, lowest common
// ancestors and root-to-term trajectories.
package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bioqueries/ontograph/loader"
)

var (
	flagCacheDir        string
	flagBackend         string
	flagIncludeObsolete bool
	flagVerbose         bool

	flagFile   string
	flagID     string
	flagFormat string
)

var rootCmd = &cobra.Command{
	Use:           "ontograph",
	Short:         "Structural queries over biological ontologies",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(logrus.WarnLevel)
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCacheDir, "cache-dir", "", "download cache directory (default: user cache)")
	pf.StringVar(&flagBackend, "backend", "matrix", "query backend: matrix or object")
	pf.BoolVar(&flagIncludeObsolete, "include-obsolete", false, "keep obsolete terms queryable")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&flagFile, "file", "", "load ontology from a local OBO file")
	pf.StringVar(&flagID, "id", "", "load ontology from the OBO Foundry catalog by id")
	pf.StringVar(&flagFormat, "format", "obo", "catalog download format")
}

func newLoader() (*loader.Loader, error) {
	opts := []loader.Option{
		loader.WithCacheDir(flagCacheDir),
		loader.WithBackend(loader.Backend(flagBackend)),
	}
	if flagIncludeObsolete {
		opts = append(opts, loader.WithObsolete())
	}
	return loader.New(opts...)
}

// loadTarget loads the ontology named by --file or --id.
func loadTarget(cmd *cobra.Command) (*loader.Loaded, error) {
	l, err := newLoader()
	if err != nil {
		return nil, err
	}
	switch {
	case flagFile != "":
		return l.LoadFromFile(flagFile)
	case flagID != "":
		return l.LoadFromCatalog(cmd.Context(), flagID, flagFormat)
	default:
		return nil, errors.New("either --file or --id is required")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
