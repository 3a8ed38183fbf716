package dimacs_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/rhartert/cnfunify/internal/dimacs"
)

func ExampleParse() {
	f, err := dimacs.Parse(strings.NewReader("c 1 X\nc 2 Y\np cnf 2 1\n1 -2 0\n"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(f.NumVars, f.NumClauses)
	fmt.Println(f.Clauses)
	fmt.Println(f.NamedVariables())

	// Output:
	// 2 1
	// [[1 -2]]
	// [{1 X} {2 Y}]
}

func ExampleParse_formatError() {
	_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 two 0\n"))

	fmt.Println(err)

	// Output:
	// line 2: malformed clause "1 two 0": strconv.Atoi: parsing "two": invalid syntax
}

func ExampleSerialize() {
	f, _ := dimacs.Parse(strings.NewReader("c 1 X\np cnf 1 5\n  -1   0\n"))

	dimacs.Serialize(os.Stdout, f)

	// Output:
	// c 1 X
	// p cnf 1 1
	// -1 0
}
