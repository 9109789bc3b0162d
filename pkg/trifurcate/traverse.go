package trifurcate

import (
	"fmt"
	"iter"
)

// Phase marks where a traversal stands relative to a coordinate's successors.
type Phase int

const (
	Pre      Phase = iota // before the left successor
	InLeft                // between the left and the middle successor
	InMiddle              // between the middle and the right successor
	Post                  // after the right successor
)

func (p Phase) String() string {
	switch p {
	case Pre:
		return "pre"
	case InLeft:
		return "in_left"
	case InMiddle:
		return "in_middle"
	case Post:
		return "post"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Visitor is called once per phase per coordinate. It receives the value
// returned by the previous call and returns the value handed to the next one.
type Visitor[C, A any] func(phase Phase, c C, acc A) A

// Traverse visits every coordinate below and including c in the order
// pre, left, in_left, middle, in_middle, right, post, threading acc through
// the visitor. It returns the accumulator produced by the last call.
//
// c must not be empty.
func Traverse[C Coordinate[C], A any](c C, acc A, visit Visitor[C, A]) A {
	if c.IsEmpty() {
		panic("[BUG] Traverse: coordinate must not be empty")
	}
	return traverseNonEmpty(c, acc, visit)
}

func traverseNonEmpty[C Coordinate[C], A any](c C, acc A, visit Visitor[C, A]) A {
	acc = visit(Pre, c, acc)
	if c.HasLeftSuccessor() {
		acc = traverseNonEmpty(c.LeftSuccessor(), acc, visit)
	}
	acc = visit(InLeft, c, acc)
	if c.HasMiddleSuccessor() {
		acc = traverseNonEmpty(c.MiddleSuccessor(), acc, visit)
	}
	acc = visit(InMiddle, c, acc)
	if c.HasRightSuccessor() {
		acc = traverseNonEmpty(c.RightSuccessor(), acc, visit)
	}
	return visit(Post, c, acc)
}

type frame[C any] struct {
	coord C
	next  Phase
}

// Walk yields the same (phase, coordinate) sequence as Traverse, using an
// explicit stack instead of recursion. An empty coordinate yields nothing.
func Walk[C Coordinate[C]](c C) iter.Seq2[Phase, C] {
	return func(yield func(Phase, C) bool) {
		if c.IsEmpty() {
			return
		}
		stack := []frame[C]{{coord: c, next: Pre}}
		for len(stack) > 0 {
			top := len(stack) - 1
			cur, phase := stack[top].coord, stack[top].next
			if !yield(phase, cur) {
				return
			}
			if phase == Post {
				stack = stack[:top]
				continue
			}
			stack[top].next++

			switch {
			case phase == Pre && cur.HasLeftSuccessor():
				stack = append(stack, frame[C]{coord: cur.LeftSuccessor()})
			case phase == InLeft && cur.HasMiddleSuccessor():
				stack = append(stack, frame[C]{coord: cur.MiddleSuccessor()})
			case phase == InMiddle && cur.HasRightSuccessor():
				stack = append(stack, frame[C]{coord: cur.RightSuccessor()})
			}
		}
	}
}
