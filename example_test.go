package levenshtein_test

import (
	"fmt"

	"github.com/gostrmetrics/levenshtein"
)

func Example() {
	ops := levenshtein.EditOps("horse", "rose")

	fmt.Printf("Edit distance: %d\n", levenshtein.Distance("horse", "rose", false))
	fmt.Printf("Operations:\n")
	for _, op := range ops {
		fmt.Printf(" %s\n", op)
	}
	fmt.Println(string(levenshtein.Apply([]byte("horse"), []byte("rose"), ops)))

	// Output:
	// Edit distance: 2
	// Operations:
	//  replace s=0 d=0
	//   delete s=2 d=2
	// rose
}

func ExampleDistance() {
	fmt.Println(levenshtein.Distance("horse", "rose", false))

	// Output:
	// 2
}

func ExampleEditOps() {
	for _, op := range levenshtein.EditOps("horse", "rose") {
		fmt.Println(op)
	}

	// Output:
	// replace s=0 d=0
	//  delete s=2 d=2
}
