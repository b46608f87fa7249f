// SPDX-License-Identifier: MIT

package window_test

import (
	"fmt"

	"github.com/katalvlaran/kleinian/window"
)

// ExampleNew fits the unit square onto a 100×100 raster and maps its two
// defining corners. The margin pulls both one pixel step inside the
// boundary rather than onto it.
func ExampleNew() {
	tr, err := window.New([]complex128{0, 1 + 1i}, 100, 100)
	if err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	x, y := tr.Apply(0)
	fmt.Println(x, y)
	x, y = tr.Apply(1 + 1i)
	fmt.Println(x, y)
	// Output:
	// 0 0
	// 99 99
}
