package ir

import "strconv"

// NumberString returns the JSON literal for a number node.
func (y *Node) NumberString() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	case y.Number != "":
		return y.Number
	default:
		return "0"
	}
}
