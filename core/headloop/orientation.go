// core/headloop/orientation.go
package headloop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrientation reports an orientation outside the two recognized
// values.
var ErrInvalidOrientation = errors.New("headloop: invalid orientation")

// Orientation names the strand the guide lies on relative to the primer
// pair.
type Orientation int

const (
	// OrientationForward: guide on the same strand as the forward primer.
	OrientationForward Orientation = iota
	// OrientationReverse: guide on the same strand as the reverse primer.
	OrientationReverse
)

// ParseOrientation accepts "forward"/"sense" and "reverse"/"antisense",
// case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "sense":
		return OrientationForward, nil
	case "reverse", "antisense":
		return OrientationReverse, nil
	default:
		return 0, fmt.Errorf("%w: %q (want forward|reverse)", ErrInvalidOrientation, s)
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationForward:
		return "forward"
	case OrientationReverse:
		return "reverse"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// AssignTagTypes maps the guide orientation to the tag type per primer.
// The primer on the guide strand takes the reverse-complemented tag, so
// that tag plus primer folds back onto the guide-adjacent template strand;
// the opposite primer takes the offset, non-complemented tag.
func AssignTagTypes(o Orientation) (complementForward, complementReverse bool, err error) {
	switch o {
	case OrientationForward:
		return true, false, nil
	case OrientationReverse:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
}
