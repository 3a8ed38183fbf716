package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhartert/cnfunify/internal/files"
	"github.com/rhartert/cnfunify/internal/unify"
)

type config struct {
	directory    string
	overwrite    bool
	extensions   []string
	mappingFile  string
	allowUnnamed bool
	verbose      bool
}

func (cfg *config) validate() error {
	if cfg.directory == "" {
		return errors.New("missing directory")
	}
	if len(cfg.extensions) == 0 {
		return errors.New("at least one file extension is required")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "cnfunify [flags] <directory>",
		Short: "Unify variable IDs across the DIMACS files of a directory",
		Long: `cnfunify renumbers the variables of all the DIMACS files of a directory
so that variables with the same name (given by "c <id> <name>" comments) share
the same ID in every file. Variables that a file does not name are added to it
and fixed to false, which preserves the file's number of models.

Unified files are written to the "unified" sub-directory unless --overwrite
is set.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), cfg.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.directory = args[0]
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logs")
	cmd.Flags().BoolVar(&cfg.overwrite, "overwrite", false, "overwrite DIMACS files instead of creating a subfolder")
	cmd.Flags().StringSliceVar(&cfg.extensions, "ext", []string{".dimacs"}, "extensions of the DIMACS files to unify")
	cmd.Flags().StringVar(&cfg.mappingFile, "mapping", "", "write the name to ID mapping to this YAML file")
	cmd.Flags().BoolVar(&cfg.allowUnnamed, "allow-unnamed", false, "unify files that use variables without a name comment")

	cmd.AddCommand(newStatsCmd())
	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func run(ctx context.Context, out io.Writer, cfg *config) error {
	paths, err := files.Discover(cfg.directory, cfg.extensions)
	if err != nil {
		return err
	}
	loaded, err := files.Load(ctx, paths)
	if err != nil {
		return err
	}

	// Variables without a name keep their local ID and could collide with
	// the global ones.
	for _, f := range loaded {
		unnamed := f.CNF.UnnamedVariables()
		if len(unnamed) == 0 {
			continue
		}
		if !cfg.allowUnnamed {
			return errors.Errorf("%q uses %d variable(s) without a name comment (e.g. %d); use --allow-unnamed to unify anyway", f.Path, len(unnamed), unnamed[0])
		}
		log.WithField("file", f.Path).Warnf("%d variable(s) without a name comment keep their ID", len(unnamed))
	}

	mapping := unify.UnifyVariableMappings(files.CNFs(loaded))
	if !unify.IsDense(mapping) {
		return errors.Errorf("internal error: global variable IDs are not 1 to %d", len(mapping))
	}
	fmt.Fprintf(out, "number of unified variables: %d\n", len(mapping))

	outDir, err := files.OutputDir(cfg.directory, cfg.overwrite)
	if err != nil {
		return err
	}
	if err := files.Write(ctx, outDir, loaded); err != nil {
		return err
	}
	log.WithFields(log.Fields{"files": len(loaded), "dir": outDir}).Info("unified files written")

	if cfg.mappingFile != "" {
		if err := files.WriteMapping(cfg.mappingFile, mapping); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
