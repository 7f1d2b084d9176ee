package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/oncoscreen/internal/cli"
	"github.com/aretw0/oncoscreen/pkg/adapters/file"
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/spf13/cobra"
)

var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Check catalogs for consistency",
	Long: `Loads catalog files or directories and reports dangling branches, cycles,
unreachable questions and recommendations that point nowhere.
Without arguments the configured catalog source is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			loader, err := cli.LoaderFor(cfg)
			if err != nil {
				return err
			}
			set, err := loader.LoadCatalogs(cmd.Context())
			if !report(out, cfg.CatalogSource, set, err) {
				return errValidation
			}
			return nil
		}

		ok := true
		for _, path := range args {
			set, err := loadPath(cmd, path)
			ok = report(out, path, set, err) && ok
		}
		if !ok {
			return errValidation
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func loadPath(cmd *cobra.Command, path string) (*catalog.Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return file.NewLoader(path).LoadCatalogs(cmd.Context())
	}
	c, err := file.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.NewSet(c)
}

func report(w io.Writer, source string, set *catalog.Set, err error) bool {
	if err != nil {
		fmt.Fprintf(w, "%s: invalid ❌\n", source)
		if details := catalog.ValidationErrors(err); len(details) > 0 {
			for _, d := range details {
				fmt.Fprintf(w, "  - %v\n", d)
			}
		} else {
			fmt.Fprintf(w, "  - %v\n", err)
		}
		return false
	}
	fmt.Fprintf(w, "%s: %d catalog(s) valid ✅\n", source, set.Len())
	return true
}
