// SPDX-License-Identifier: MIT

package measure_test

import (
	"fmt"

	"github.com/StuttgarterDotNet/contextual-encoders/hierarchy"
	"github.com/StuttgarterDotNet/contextual-encoders/measure"
)

func ExampleWuPalmer_Compare() {
	tree, _ := hierarchy.NewTree("Color")
	_ = tree.AddChild("Dark", "")
	_ = tree.AddChild("Light", "")
	_ = tree.AddChild("Darkblue", "Dark")

	wp, _ := measure.NewWuPalmer(tree)
	same, _ := wp.Compare("Darkblue", "Darkblue")
	near, _ := wp.Compare("Darkblue", "Dark")
	far, _ := wp.Compare("Darkblue", "Light")
	fmt.Printf("%.2f %.2f %.2f\n", same, near, far)
	// Output: 1.00 0.80 0.40
}
