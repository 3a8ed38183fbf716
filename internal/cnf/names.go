package cnf

import (
	"strconv"
	"strings"
)

// NamedVar associates a variable ID to the name given by a comment.
type NamedVar struct {
	ID   int
	Name string
}

// ParseNameComment parses a comment of the form "<id> <name>" where <id> is
// a non-negative decimal integer. The name is everything after the first
// whitespace character following the ID and may be empty ("12 " names
// variable 12 with ""). A comment without any whitespace is not a name.
func ParseNameComment(comment string) (NamedVar, bool) {
	i := strings.IndexAny(comment, " \t")
	if i <= 0 {
		return NamedVar{}, false
	}
	id, err := strconv.ParseUint(comment[:i], 10, 31)
	if err != nil {
		return NamedVar{}, false
	}
	return NamedVar{ID: int(id), Name: comment[i+1:]}, true
}

// NameComment returns the comment that names variable id.
func NameComment(id int, name string) string {
	return strconv.Itoa(id) + " " + name
}

// NamedVariables returns the variables named by the formula's comments, in
// the order in which the comments appear. Comments that do not follow the
// "<id> <name>" convention are ignored.
func (f *CNF) NamedVariables() []NamedVar {
	named := []NamedVar{}
	for _, c := range f.Comments {
		if nv, ok := ParseNameComment(c); ok {
			named = append(named, nv)
		}
	}
	return named
}

// UnnamedVariables returns the variables that appear in the clauses without
// being named by any comment, in order of first occurrence.
func (f *CNF) UnnamedVariables() []int {
	named := map[int]struct{}{}
	for _, nv := range f.NamedVariables() {
		named[nv.ID] = struct{}{}
	}

	unnamed := []int{}
	for _, c := range f.Clauses {
		for _, l := range c {
			v := abs(l)
			if _, ok := named[v]; ok {
				continue
			}
			named[v] = struct{}{} // report each variable once
			unnamed = append(unnamed, v)
		}
	}
	return unnamed
}
