package core_test

import (
	"fmt"

	"github.com/katalvlaran/mrtguide/core"
)

// ExampleAdjacency links three platforms of one interchange pairwise.
func ExampleAdjacency() {
	a := core.NewAdjacency()
	_ = a.Link("NS24", "NE6")
	_ = a.Link("NS24", "CC1")
	_ = a.Link("NE6", "CC1")

	fmt.Println(a.NeighborIDs("CC1"))
	fmt.Println(a.Linked("NE6", "NS24"), a.LinkCount())
	// Output:
	// [NE6 NS24]
	// true 3
}
