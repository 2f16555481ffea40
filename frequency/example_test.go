// SPDX-License-Identifier: MIT

package frequency_test

import (
	"fmt"

	"github.com/katalvlaran/rfset/frequency"
)

func ExampleNew() {
	f, err := frequency.New(1, 3, 3, frequency.GHz)
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	fmt.Println(f.Scaled())
	// Output:
	// 1-3 GHz, 3 pts
	// [1 2 3]
}
