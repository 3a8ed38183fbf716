// Package cnf holds the in-memory representation of a CNF formula as read
// from (or written to) a DIMACS file.
package cnf

import (
	"fmt"
)

// CNF is a formula in conjunctive normal form. Clauses are slices of non-zero
// literals: the absolute value of a literal is the ID of its variable (in
// [1, NumVars]) and its sign is the literal's polarity.
type CNF struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int

	// Free-text annotations. Comments of the form "<id> <name>" give a name
	// to variable <id>; all other comments are carried along untouched.
	Comments []string
}

// FromClauses returns a CNF over the given clauses. The number of variables is
// the largest variable ID that appears in the clauses.
func FromClauses(clauses [][]int) *CNF {
	maxVar := 0
	for _, c := range clauses {
		for _, l := range c {
			maxVar = max(maxVar, abs(l))
		}
	}
	return &CNF{
		NumVars:    maxVar,
		NumClauses: len(clauses),
		Clauses:    clauses,
	}
}

// AddClause appends the given clause to the formula. It panics if one of the
// clause's literals refers to a variable larger than NumVars.
func (f *CNF) AddClause(clause []int) {
	for _, l := range clause {
		if abs(l) > f.NumVars {
			panic(fmt.Sprintf("cnf: literal %d is out of the variable range [1, %d]", l, f.NumVars))
		}
	}
	f.Clauses = append(f.Clauses, clause)
	f.NumClauses++
}

// AddComment appends the given comment to the formula.
func (f *CNF) AddComment(comment string) {
	f.Comments = append(f.Comments, comment)
}

// RemapVariableIDs replaces the ID of each variable in m by its mapped value,
// both in the clauses (preserving the literals' polarity) and in the naming
// comments. Variables that are not in m are left unchanged. NumVars is set to
// the largest value of m, or 0 if m is empty.
func (f *CNF) RemapVariableIDs(m map[int]int) {
	numVars := 0
	for _, id := range m {
		numVars = max(numVars, id)
	}
	f.NumVars = numVars

	for _, c := range f.Clauses {
		for i, l := range c {
			newID, ok := m[abs(l)]
			if !ok {
				continue
			}
			if l < 0 {
				c[i] = -newID
			} else {
				c[i] = newID
			}
		}
	}

	for i, comment := range f.Comments {
		nv, ok := ParseNameComment(comment)
		if !ok {
			continue
		}
		if newID, ok := m[nv.ID]; ok {
			f.Comments[i] = NameComment(newID, nv.Name)
		}
	}
}

func abs(l int) int {
	if l < 0 {
		return -l
	}
	return l
}
