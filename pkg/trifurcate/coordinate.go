package trifurcate

// Coordinate is the navigation contract of a trifurcating tree.
// C is the coordinate type itself, so successors are returned as values of
// the implementing type.
//
// The successor accessors may only be called after the matching Has check
// returned true.
type Coordinate[C any] interface {
	IsEmpty() bool
	HasLeftSuccessor() bool
	HasMiddleSuccessor() bool
	HasRightSuccessor() bool
	LeftSuccessor() C
	MiddleSuccessor() C
	RightSuccessor() C
}

// BidirectionalCoordinate adds navigation towards the root.
// Predecessor may only be called after HasPredecessor returned true.
type BidirectionalCoordinate[C any] interface {
	Coordinate[C]
	HasPredecessor() bool
	Predecessor() C
}

// Tridirectional is a bidirectional coordinate whose values can be compared
// for identity. The role queries need it to find a coordinate among the
// successors of its predecessor.
type Tridirectional[C any] interface {
	comparable
	BidirectionalCoordinate[C]
}
