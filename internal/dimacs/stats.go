package dimacs

import (
	"fmt"
	"io"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/yagh"
)

// Stats summarizes a DIMACS file without loading its clauses in memory.
type Stats struct {
	// Values declared by the problem line.
	HasHeader       bool
	DeclaredVars    int
	DeclaredClauses int

	// Values observed in the file itself. Vars is the largest variable ID
	// that appears in a clause.
	Vars     int
	Clauses  int
	Literals int
	Comments int

	// Number of occurrences of each variable, indexed by variable ID.
	occurrences []int
}

// VarCount is the number of times a variable occurs in the clauses.
type VarCount struct {
	Var   int
	Count int
}

// VarsMismatch returns true if the problem line declares a different number
// of variables than the one observed.
func (s *Stats) VarsMismatch() bool {
	return s.DeclaredVars != s.Vars
}

// ClausesMismatch returns true if the problem line declares a different number
// of clauses than the one observed.
func (s *Stats) ClausesMismatch() bool {
	return s.DeclaredClauses != s.Clauses
}

// Occurrences returns the number of occurrences of variable v.
func (s *Stats) Occurrences(v int) int {
	if v <= 0 || v >= len(s.occurrences) {
		return 0
	}
	return s.occurrences[v]
}

// TopVariables returns (at most) the k variables that occur the most in the
// clauses, from the most to the least frequent.
func (s *Stats) TopVariables(k int) []VarCount {
	if k <= 0 || len(s.occurrences) == 0 {
		return nil
	}

	heap := yagh.New[float64](len(s.occurrences))
	for v, n := range s.occurrences {
		if n > 0 {
			heap.Put(v, -float64(n))
		}
	}

	top := make([]VarCount, 0, k)
	for len(top) < k {
		next, ok := heap.Pop()
		if !ok {
			break
		}
		top = append(top, VarCount{Var: next.Elem, Count: s.occurrences[next.Elem]})
	}
	return top
}

// ReadStatsFile computes the statistics of the DIMACS file with the given
// name, see ReadStats.
func ReadStatsFile(filename string, gzipped bool) (*Stats, error) {
	rc, err := openReader(filename, gzipped)
	if err != nil {
		return nil, &FormatError{Kind: ReadError, Err: err}
	}
	defer rc.Close()

	return ReadStats(rc)
}

// ReadStats streams the DIMACS content of r and returns its statistics.
func ReadStats(r io.Reader) (*Stats, error) {
	b := &statsBuilder{stats: &Stats{}}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.stats, nil
}

// statsBuilder implements dimacs.Builder.
type statsBuilder struct {
	stats *Stats
}

func (b *statsBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q are not supported", problem)
	}
	if b.stats.HasHeader {
		return fmt.Errorf("found a second problem line")
	}
	b.stats.HasHeader = true
	b.stats.DeclaredVars = nVars
	b.stats.DeclaredClauses = nClauses
	return nil
}

func (b *statsBuilder) Clause(tmpClause []int) error {
	b.stats.Clauses++
	b.stats.Literals += len(tmpClause)
	for _, l := range tmpClause {
		v := l
		if v < 0 {
			v = -v
		}
		if v >= len(b.stats.occurrences) {
			b.stats.occurrences = append(b.stats.occurrences, make([]int, v+1-len(b.stats.occurrences))...)
		}
		b.stats.occurrences[v]++
		b.stats.Vars = max(b.stats.Vars, v)
	}
	return nil
}

func (b *statsBuilder) Comment(_ string) error {
	b.stats.Comments++
	return nil
}
