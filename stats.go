package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhartert/cnfunify/internal/dimacs"
	"github.com/rhartert/cnfunify/internal/files"
)

type statsConfig struct {
	path       string
	extensions []string
	csvFile    string
	top        int
}

type fileStats struct {
	name  string
	stats *dimacs.Stats
}

func newStatsCmd() *cobra.Command {
	cfg := &statsConfig{}
	cmd := &cobra.Command{
		Use:   "stats [flags] <file|directory>",
		Short: "Print the number of variables and clauses of DIMACS files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.path = args[0]
			return runStats(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringSliceVar(&cfg.extensions, "ext", []string{".cnf", ".dimacs"}, "extensions of the DIMACS files when given a directory")
	cmd.Flags().StringVar(&cfg.csvFile, "csv", "", "also write the statistics to this CSV file")
	cmd.Flags().IntVar(&cfg.top, "top", 0, "print the K most frequent variables of each file")
	return cmd
}

func statsPaths(cfg *statsConfig) ([]string, error) {
	info, err := os.Stat(cfg.path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %q", cfg.path)
	}
	if !info.IsDir() {
		return []string{cfg.path}, nil
	}
	return files.Discover(cfg.path, cfg.extensions)
}

func runStats(out io.Writer, cfg *statsConfig) error {
	paths, err := statsPaths(cfg)
	if err != nil {
		return err
	}

	all := make([]fileStats, 0, len(paths))
	for _, p := range paths {
		s, err := dimacs.ReadStatsFile(p, files.IsGzipped(p))
		if err != nil {
			return errors.Wrapf(err, "could not read %q", p)
		}
		name := filepath.Base(p)
		if !s.HasHeader {
			log.WithField("file", name).Warn("missing problem line")
		}
		if s.VarsMismatch() {
			log.WithField("file", name).Warnf("mismatching variable count: %d in header but %d in file", s.DeclaredVars, s.Vars)
		}
		if s.ClausesMismatch() {
			log.WithField("file", name).Warnf("mismatching clause count: %d in header but %d in file", s.DeclaredClauses, s.Clauses)
		}
		all = append(all, fileStats{name: name, stats: s})
	}

	fmt.Fprintf(out, "%-30s %8s %8s\n", "File", "Vars", "Clauses")
	for _, fs := range all {
		fmt.Fprintf(out, "%-30s %8d %8d\n", fs.name, fs.stats.Vars, fs.stats.Clauses)
		for _, vc := range fs.stats.TopVariables(cfg.top) {
			fmt.Fprintf(out, "  var %-24d %8d\n", vc.Var, vc.Count)
		}
	}

	vars := lo.Map(all, func(fs fileStats, _ int) int { return fs.stats.Vars })
	clauses := lo.Map(all, func(fs fileStats, _ int) int { return fs.stats.Clauses })
	fmt.Fprintf(out, "Vars: Min - Max\n%d %d\n", lo.Min(vars), lo.Max(vars))
	fmt.Fprintf(out, "Clauses: Min - Max\n%d %d\n", lo.Min(clauses), lo.Max(clauses))

	if cfg.csvFile != "" {
		return writeStatsCSV(cfg.csvFile, all)
	}
	return nil
}

func writeStatsCSV(filename string, all []fileStats) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", filename)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	w.Write([]string{"File", "Vars", "Clauses"})
	for _, fs := range all {
		w.Write([]string{fs.name, strconv.Itoa(fs.stats.Vars), strconv.Itoa(fs.stats.Clauses)})
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "could not write %q", filename)
}
