// SPDX-License-Identifier: MIT

package linkage_test

import (
	"fmt"

	"github.com/katalvlaran/cellcluster/dissim"
	"github.com/katalvlaran/cellcluster/linkage"
	"github.com/katalvlaran/cellcluster/series"
)

// ExampleBuild clusters six cells whose traces reduce to single points:
// two tight pairs and two outliers.
//
//	A=0  B=1  C=10  D=11.5  E=30  F=60
//
// Single linkage joins the pairs first, then the pairs with each other,
// then the outliers one by one. Cutting at k=4 keeps both outliers alone.
func ExampleBuild() {
	chs := []series.Channel{"A", "B", "C", "D", "E", "F"}
	xs := []float64{0, 1, 10, 11.5, 30, 60}
	cols := make([][]float64, len(xs))
	for i, x := range xs {
		cols[i] = []float64{x}
	}
	d, err := dissim.ComputeColumns(chs, cols, dissim.Cityblock{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, err := linkage.Build(d, linkage.Single)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, m := range tree.Merges() {
		fmt.Printf("%d: %d+%d at %.1f (size %d)\n", len(xs)+i, m.Left, m.Right, m.Distance, m.Size)
	}

	a, _ := linkage.Cut(tree, 4)
	fmt.Println(a.Labels())
	// Output:
	// 6: 0+1 at 1.0 (size 2)
	// 7: 2+3 at 1.5 (size 2)
	// 8: 6+7 at 9.0 (size 4)
	// 9: 4+8 at 18.5 (size 5)
	// 10: 5+9 at 30.0 (size 6)
	// [1 1 2 2 3 4]
}

// ExampleParseMethod shows the accepted aliases.
func ExampleParseMethod() {
	for _, name := range []string{"single", "UPGMA", "wpgmc", "ward"} {
		m, err := linkage.ParseMethod(name)
		fmt.Println(name, "->", m, err)
	}
	// Output:
	// single -> single <nil>
	// UPGMA -> average <nil>
	// wpgmc -> median <nil>
	// ward -> ward <nil>
}
