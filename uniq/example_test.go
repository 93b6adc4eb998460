package uniq_test

import (
	"fmt"

	"github.com/katalvlaran/checkpoint/uniq"
)

func ExampleCount() {
	fmt.Println(uniq.Count([]string{"a", "b", "a"}))
	// Output:
	// My original array contained 3 total items and 2 unique items!
}
