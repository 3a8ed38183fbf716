// Package unify gives a common variable numbering to several CNF formulas.
//
// Formulas name their variables with "<id> <name>" comments. Variables that
// share a name across formulas are given the same global ID, and each formula
// is extended to the whole global variable space: variables it does not name
// are forced to false by a unit clause. As these variables do not occur in the
// formula's original clauses, this preserves the formula's models restricted
// to its original variables.
package unify

import (
	"github.com/samber/lo"

	"github.com/rhartert/cnfunify/internal/cnf"
)

// UnifyVariableMappings renumbers the variables of the given formulas in place
// and returns the global ID of each variable name.
//
// Global IDs are assigned from 1 in the order in which names first appear,
// scanning formulas in order and the comments of each formula in order. After
// the call, every formula is defined over the N global variables (N being the
// number of distinct names) and contains one unit clause [-id] together with
// the comment "<id> <name>" for each global variable it did not name.
//
// NumVars is exactly N only for formulas whose clause variables are all named.
// Variables used in clauses but not named by any comment keep their ID. If
// such an ID is larger than N, the formula's NumVars is widened to fit it.
func UnifyVariableMappings(cnfs []*cnf.CNF) map[string]int {
	names := newNaming()
	for _, f := range cnfs {
		for _, nv := range f.NamedVariables() {
			names.add(nv.Name)
		}
	}

	numVars := names.size()
	for _, f := range cnfs {
		unifyOne(f, names, numVars)
	}

	return names.ids
}

func unifyOne(f *cnf.CNF, names *naming, numVars int) {
	named := f.NamedVariables()

	localToGlobal := make(map[int]int, len(named))
	for _, nv := range named {
		localToGlobal[nv.ID] = names.id(nv.Name)
	}
	f.RemapVariableIDs(localToGlobal)
	f.NumVars = max(numVars, maxVar(f.Clauses))

	// Only the global IDs that the clauses were remapped to are covered. A
	// local ID named twice keeps its last name, the other one gets padded.
	covered := make([]bool, numVars+1)
	for _, id := range localToGlobal {
		covered[id] = true
	}
	for id := 1; id <= numVars; id++ {
		if covered[id] {
			continue
		}
		f.AddClause([]int{-id}) // fix the new variable to false
		f.AddComment(cnf.NameComment(id, names.name(id)))
	}
}

func maxVar(clauses [][]int) int {
	m := 0
	for _, c := range clauses {
		for _, l := range c {
			m = max(m, l, -l)
		}
	}
	return m
}

// IsDense returns true if the IDs of m are exactly 1 to len(m). This holds
// for every mapping returned by UnifyVariableMappings.
func IsDense(m map[string]int) bool {
	if len(m) == 0 {
		return true
	}
	ids := lo.Uniq(lo.Values(m))
	return len(ids) == len(m) && lo.Max(ids) == len(m) && lo.Min(ids) == 1
}
