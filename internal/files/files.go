// Package files finds DIMACS files on disk, loads them and writes back their
// unified version.
package files

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rhartert/cnfunify/internal/cnf"
	"github.com/rhartert/cnfunify/internal/dimacs"
)

// UnifiedDir is the name of the sub-directory in which unified files are
// written when the input files are not overwritten.
const UnifiedDir = "unified"

// ErrNoInput is returned when a directory does not contain any DIMACS file.
var ErrNoInput = errors.New("no DIMACS files found")

// File is a formula together with the path it was read from.
type File struct {
	Path string
	CNF  *cnf.CNF
}

// IsGzipped returns true if the file at path is expected to be compressed.
func IsGzipped(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// hasExt returns true if name ends with one of the extensions, possibly
// followed by ".gz".
func hasExt(name string, exts []string) bool {
	name = strings.TrimSuffix(name, ".gz")
	return lo.SomeBy(exts, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// Discover returns the paths of the regular files in dir whose name has one of
// the given extensions, sorted by name. Sub-directories are not visited.
func Discover(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not list directory %q", dir)
	}

	paths := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() || !hasExt(e.Name(), exts) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, errors.Wrapf(ErrNoInput, "directory %q (extensions %v)", dir, exts)
	}

	sort.Strings(paths)
	return paths, nil
}

// Load parses the given files concurrently. The returned files are in the same
// order as paths. Loading stops at the first error.
func Load(ctx context.Context, paths []string) ([]File, error) {
	files := make([]File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := dimacs.ParseFile(p, IsGzipped(p))
			if err != nil {
				return errors.Wrapf(err, "could not parse %q", p)
			}
			log.WithFields(log.Fields{
				"file":     p,
				"vars":     f.NumVars,
				"clauses":  f.NumClauses,
				"comments": len(f.Comments),
			}).Debug("loaded")
			files[i] = File{Path: p, CNF: f}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// CNFs returns the formulas of the given files.
func CNFs(files []File) []*cnf.CNF {
	return lo.Map(files, func(f File, _ int) *cnf.CNF {
		return f.CNF
	})
}

// OutputDir returns the directory in which the unified versions of the files
// in dir must be written, creating it if needed.
func OutputDir(dir string, overwrite bool) (string, error) {
	if overwrite {
		return dir, nil
	}
	out := filepath.Join(dir, UnifiedDir)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", errors.Wrapf(err, "could not create output directory %q", out)
	}
	return out, nil
}

// Write writes each file in outDir under its original base name.
func Write(ctx context.Context, outDir string, files []File) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := filepath.Join(outDir, filepath.Base(f.Path))
		if err := dimacs.WriteFile(p, f.CNF, IsGzipped(p)); err != nil {
			return errors.Wrapf(err, "could not write %q", p)
		}
		log.WithField("file", p).Debug("written")
	}
	return nil
}
