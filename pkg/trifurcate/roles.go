package trifurcate

// IsLeftSuccessor reports whether c is the left successor of its predecessor.
// c must have a predecessor.
func IsLeftSuccessor[C Tridirectional[C]](c C) bool {
	p := predecessorOf(c, "IsLeftSuccessor")
	return p.HasLeftSuccessor() && p.LeftSuccessor() == c
}

// IsMiddleSuccessor reports whether c is the middle successor of its predecessor.
// c must have a predecessor.
func IsMiddleSuccessor[C Tridirectional[C]](c C) bool {
	p := predecessorOf(c, "IsMiddleSuccessor")
	return p.HasMiddleSuccessor() && p.MiddleSuccessor() == c
}

// IsRightSuccessor reports whether c is the right successor of its predecessor.
// c must have a predecessor.
func IsRightSuccessor[C Tridirectional[C]](c C) bool {
	p := predecessorOf(c, "IsRightSuccessor")
	return p.HasRightSuccessor() && p.RightSuccessor() == c
}

func predecessorOf[C Tridirectional[C]](c C, caller string) C {
	if !c.HasPredecessor() {
		panic("[BUG] " + caller + ": coordinate has no predecessor")
	}
	return c.Predecessor()
}
