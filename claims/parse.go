package claims

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvlgrid/geom"
)

// claimRx matches "#123 @ 3,2: 5x4", tolerating extra whitespace.
var claimRx = regexp.MustCompile(`^\s*#(\d+)\s*@\s*(-?\d+)\s*,\s*(-?\d+)\s*:\s*(\d+)\s*x\s*(\d+)\s*$`)

// ParseClaim parses a "#<id> @ <x>,<y>: <w>x<h>" record.
// Errors wrap ErrMalformedClaim.
func ParseClaim(line string) (Claim, error) {
	m := claimRx.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, fmt.Errorf("%w: %q", ErrMalformedClaim, line)
	}
	var n [5]int
	for i, s := range m[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Claim{}, fmt.Errorf("%w: %q: %v", ErrMalformedClaim, line, err)
		}
		n[i] = v
	}

	return Claim{
		ID:     n[0],
		Origin: geom.Point{X: n[1], Y: n[2]},
		Width:  n[3],
		Height: n[4],
	}, nil
}
