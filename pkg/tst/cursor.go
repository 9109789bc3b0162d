package tst

// Cursor is a position in an input sequence. FindAt advances it past each
// match, so several keys can be read out of one input.
type Cursor[S any] struct {
	Input []S
	Pos   int
}

func NewCursor[S any](input []S) *Cursor[S] {
	return &Cursor[S]{Input: input}
}

// Done checks if the whole input was consumed.
func (c *Cursor[S]) Done() bool {
	return c.Pos >= len(c.Input)
}

// Remaining returns the unconsumed part of the input.
func (c *Cursor[S]) Remaining() []S {
	if c.Done() {
		return nil
	}
	return c.Input[c.Pos:]
}

// FindAt looks up the longest stored key at the cursor position. On a match
// the cursor moves just past it; otherwise the cursor does not move.
func (t *Tree[S, V]) FindAt(c *Cursor[S]) *V {
	v, n := t.Find(c.Remaining())
	if v != nil {
		c.Pos += n
	}
	return v
}

// Match is a stored key found in a scanned input, spanning Input[Start:End].
type Match[V any] struct {
	Start, End int
	Value      *V
}

// Scan splits input into longest matches from left to right. Symbols that
// start no stored key are skipped one at a time. f is called for each match
// until it returns false.
func (t *Tree[S, V]) Scan(input []S, f func(m Match[V]) bool) {
	c := NewCursor(input)
	for !c.Done() {
		start := c.Pos
		if v := t.FindAt(c); v != nil {
			if !f(Match[V]{Start: start, End: c.Pos, Value: v}) {
				return
			}
			continue
		}
		c.Pos++
	}
}
