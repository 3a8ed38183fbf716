package unify

// naming assigns dense global IDs to variable names, in the order in which
// the names are first seen. IDs start at 1.
type naming struct {
	ids   map[string]int
	names []string // names[id-1] is the name of global ID id
}

func newNaming() *naming {
	return &naming{ids: map[string]int{}}
}

// add registers name and returns its global ID.
func (n *naming) add(name string) int {
	if id, ok := n.ids[name]; ok {
		return id
	}
	n.names = append(n.names, name)
	id := len(n.names)
	n.ids[name] = id
	return id
}

func (n *naming) id(name string) int {
	return n.ids[name]
}

func (n *naming) name(id int) string {
	return n.names[id-1]
}

// size returns the number of distinct names, which is also the largest
// global ID.
func (n *naming) size() int {
	return len(n.names)
}
