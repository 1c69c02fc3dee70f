package claims_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/claims"
)

// ExampleCountOverlaps shows the two answers for three claims where #1 and #2
// share a 2×2 patch and #3 stands alone.
//
//	........
//	...2222.
//	...2222.
//	.11XX22.
//	.11XX22.
//	.111133.
//	.111133.
//	........
func ExampleCountOverlaps() {
	var cs []claims.Claim
	for _, line := range []string{"#1 @ 1,3: 4x4", "#2 @ 3,1: 4x4", "#3 @ 5,5: 2x2"} {
		c, _ := claims.ParseClaim(line)
		cs = append(cs, c)
	}

	id, err := claims.FindUntouched(cs)
	fmt.Println("overlapping cells:", claims.CountOverlaps(cs))
	fmt.Println("untouched claim:", id, err)
	// Output:
	// overlapping cells: 4
	// untouched claim: 3 <nil>
}
