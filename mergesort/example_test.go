package mergesort_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlseq/mergesort"
)

// ExampleSortFunc orders words by length; words of equal length keep their
// input order.
func ExampleSortFunc() {
	words := strings.Fields("pear fig apple kiwi plum date")
	err := mergesort.SortFunc(words, 0, len(words)-1, func(a, b string) int {
		return len(a) - len(b)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(words, " "))
	// Output:
	// fig pear kiwi plum date apple
}

// ExampleSort_bottomUp uses the iterative driver.
func ExampleSort_bottomUp() {
	xs := []int{8, 3, 5, 1, 9, 2}
	_ = mergesort.Sort(xs, 0, len(xs)-1, mergesort.WithBottomUp())
	fmt.Println(xs)
	// Output:
	// [1 2 3 5 8 9]
}
