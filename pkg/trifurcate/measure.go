package trifurcate

// Weight returns the number of non-empty coordinates reachable from c,
// c included. An empty coordinate weighs 0.
func Weight[C Coordinate[C]](c C) uint64 {
	if c.IsEmpty() {
		return 0
	}
	var l, m, r uint64
	if c.HasLeftSuccessor() {
		l = Weight(c.LeftSuccessor())
	}
	if c.HasMiddleSuccessor() {
		m = Weight(c.MiddleSuccessor())
	}
	if c.HasRightSuccessor() {
		r = Weight(c.RightSuccessor())
	}
	return l + m + r + 1
}

// Height returns the number of coordinates on the longest path from c down
// to a coordinate without successors. An empty coordinate has height 0.
func Height[C Coordinate[C]](c C) uint64 {
	if c.IsEmpty() {
		return 0
	}
	var l, m, r uint64
	if c.HasLeftSuccessor() {
		l = Height(c.LeftSuccessor())
	}
	if c.HasMiddleSuccessor() {
		m = Height(c.MiddleSuccessor())
	}
	if c.HasRightSuccessor() {
		r = Height(c.RightSuccessor())
	}
	return max(l, m, r) + 1
}

// Depth returns the number of predecessors between c and the root.
func Depth[C BidirectionalCoordinate[C]](c C) int {
	depth := 0
	for c.HasPredecessor() {
		c = c.Predecessor()
		depth++
	}
	return depth
}
