package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const statsInstance = `c 1 A
c 2 B
p cnf 5 4
1 2 3 0
2 3 0
2 0
-4 0
`

func TestReadStats(t *testing.T) {
	got, err := ReadStats(strings.NewReader(statsInstance))
	if err != nil {
		t.Fatalf("ReadStats(): want no error, got %s", err)
	}

	if !got.HasHeader {
		t.Errorf("ReadStats(): want header")
	}
	if got.DeclaredVars != 5 || got.DeclaredClauses != 4 {
		t.Errorf("ReadStats(): declared = (%d, %d), want (5, 4)", got.DeclaredVars, got.DeclaredClauses)
	}
	if got.Vars != 4 || got.Clauses != 4 || got.Literals != 7 {
		t.Errorf("ReadStats(): observed = (%d, %d, %d), want (4, 4, 7)", got.Vars, got.Clauses, got.Literals)
	}
	if !got.VarsMismatch() {
		t.Errorf("VarsMismatch(): want true")
	}
	if got.ClausesMismatch() {
		t.Errorf("ClausesMismatch(): want false")
	}
	if n := got.Occurrences(2); n != 3 {
		t.Errorf("Occurrences(2) = %d, want 3", n)
	}
	if n := got.Occurrences(5); n != 0 {
		t.Errorf("Occurrences(5) = %d, want 0", n)
	}
}

func TestReadStatsFile(t *testing.T) {
	got, err := ReadStatsFile("testdata/test_instance.cnf.gz", true)
	if err != nil {
		t.Fatalf("ReadStatsFile(): want no error, got %s", err)
	}

	if got.Vars != 3 || got.Clauses != 8 || got.Literals != 24 {
		t.Errorf("ReadStatsFile(): observed = (%d, %d, %d), want (3, 8, 24)", got.Vars, got.Clauses, got.Literals)
	}
	if got.VarsMismatch() || got.ClausesMismatch() {
		t.Errorf("ReadStatsFile(): unexpected mismatch: %+v", got)
	}
}

func TestReadStats_notCNF(t *testing.T) {
	if _, err := ReadStats(strings.NewReader("p wcnf 2 1\n1 2 0\n")); err == nil {
		t.Errorf("ReadStats(): want error, got none")
	}
}

func TestTopVariables(t *testing.T) {
	s, err := ReadStats(strings.NewReader(statsInstance))
	if err != nil {
		t.Fatalf("ReadStats(): want no error, got %s", err)
	}

	want := []VarCount{{Var: 2, Count: 3}, {Var: 3, Count: 2}}
	if diff := cmp.Diff(want, s.TopVariables(2)); diff != "" {
		t.Errorf("TopVariables(2): mismatch (-want, +got):\n%s", diff)
	}
	if got := s.TopVariables(10); len(got) != 4 {
		t.Errorf("TopVariables(10): got %d variables, want 4", len(got))
	}
	if got := s.TopVariables(0); got != nil {
		t.Errorf("TopVariables(0) = %v, want nil", got)
	}
}
