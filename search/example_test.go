package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/search"
)

// ExampleNew lists every cycle through C of total weight at most 20.
func ExampleNew() {
	g := core.NewGraph()
	_ = g.LoadRecords([][]string{
		{"B", "C", "4"}, {"C", "D", "8"}, {"D", "C", "8"},
		{"C", "E", "2"}, {"E", "B", "3"},
	})

	s, _ := search.New(g.Edges(), "C", "C", 20, search.Weight)
	for p := range s.All() {
		fmt.Println(p, p.Weight)
	}
	// Output:
	// C-E-B-C 9
	// C-D-C 16
	// C-E-B-C-E-B-C 18
}
