package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromClauses(t *testing.T) {
	testCases := []struct {
		desc    string
		clauses [][]int
		want    *CNF
	}{
		{
			desc:    "no clauses",
			clauses: nil,
			want:    &CNF{},
		},
		{
			desc:    "largest variable",
			clauses: [][]int{{1, -2}, {-3}},
			want: &CNF{
				NumVars:    3,
				NumClauses: 2,
				Clauses:    [][]int{{1, -2}, {-3}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := FromClauses(tc.clauses)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FromClauses(): mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestAddClause(t *testing.T) {
	f := &CNF{NumVars: 3}

	f.AddClause([]int{1, -3})
	f.AddClause([]int{-2})

	want := &CNF{
		NumVars:    3,
		NumClauses: 2,
		Clauses:    [][]int{{1, -3}, {-2}},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("AddClause(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestAddClause_outOfRange(t *testing.T) {
	f := &CNF{NumVars: 2}

	defer func() {
		if recover() == nil {
			t.Errorf("AddClause(): want panic, got none")
		}
		if f.NumClauses != 0 || len(f.Clauses) != 0 {
			t.Errorf("AddClause(): clause added despite panic: %+v", f)
		}
	}()

	f.AddClause([]int{1, -3})
}

func TestAddComment(t *testing.T) {
	f := &CNF{}

	f.AddComment("1 X")
	f.AddComment("not a name")

	want := []string{"1 X", "not a name"}
	if diff := cmp.Diff(want, f.Comments); diff != "" {
		t.Errorf("AddComment(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestRemapVariableIDs(t *testing.T) {
	f := &CNF{
		NumVars:    3,
		NumClauses: 2,
		Clauses:    [][]int{{1, -2, 3}, {-1, 2, -3}},
		Comments:   []string{"1 X", "2 Y", "3 Z", "generated by hand"},
	}

	f.RemapVariableIDs(map[int]int{1: 10, 3: 30})

	want := &CNF{
		NumVars:    30,
		NumClauses: 2,
		Clauses:    [][]int{{10, -2, 30}, {-10, 2, -30}},
		Comments:   []string{"10 X", "2 Y", "30 Z", "generated by hand"},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("RemapVariableIDs(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestRemapVariableIDs_widensToMappedRange(t *testing.T) {
	f := &CNF{
		NumVars:    1,
		NumClauses: 1,
		Clauses:    [][]int{{-1}},
	}

	f.RemapVariableIDs(map[int]int{1: 2, 7: 5})

	if f.NumVars != 5 {
		t.Errorf("RemapVariableIDs(): NumVars = %d, want 5", f.NumVars)
	}
	if diff := cmp.Diff([][]int{{-2}}, f.Clauses); diff != "" {
		t.Errorf("RemapVariableIDs(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestRemapVariableIDs_emptyMap(t *testing.T) {
	f := &CNF{
		NumVars:    2,
		NumClauses: 1,
		Clauses:    [][]int{{1, 2}},
	}

	f.RemapVariableIDs(map[int]int{})

	if f.NumVars != 0 {
		t.Errorf("RemapVariableIDs(): NumVars = %d, want 0", f.NumVars)
	}
	if diff := cmp.Diff([][]int{{1, 2}}, f.Clauses); diff != "" {
		t.Errorf("RemapVariableIDs(): mismatch (-want, +got):\n%s", diff)
	}
}
