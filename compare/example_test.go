// SPDX-License-Identifier: MIT

package compare_test

import (
	"fmt"

	"github.com/katalvlaran/cellcluster/compare"
	"github.com/katalvlaran/cellcluster/series"
)

// ExampleJaccard shows that the score is normalized by the second set only.
func ExampleJaccard() {
	a := []series.Channel{"1", "2", "3", "4"}
	b := []series.Channel{"3", "4"}

	ab, _ := compare.Jaccard(a, b)
	ba, _ := compare.Jaccard(b, a)
	fmt.Printf("%.2f %.2f\n", ab, ba)
	// Output:
	// 1.00 0.50
}
