package tst

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// insert stores value under seq below *root unless seq is already present.
// It returns the payload stored for seq and whether this call created it.
// If an allocation fails, every node linked by this call is released again,
// leaving the tree as it was.
func (o ops[S, V]) insert(root **Node[S, V], seq []S, value V) (*V, bool, error) {
	if len(seq) == 0 {
		return nil, false, nil
	}

	var (
		slot    = root
		parent  *Node[S, V]
		created []**Node[S, V]
	)
	for i := 0; ; {
		c := seq[i]
		if *slot == nil {
			n, err := o.construct(c)
			if err != nil {
				o.unwind(created)
				return nil, false, fmt.Errorf("insert: allocate node for %v: %w", c, err)
			}
			n.parent = parent
			*slot = n
			created = append(created, slot)
		}
		p := *slot

		switch cmp.Compare(c, p.symbol) {
		case 0:
			if i++; i == len(seq) {
				if p.payload != nil {
					return p.payload, false, nil
				}
				v, err := o.alloc.NewPayload(value)
				if err != nil {
					o.unwind(created)
					return nil, false, fmt.Errorf("insert: allocate payload: %w", err)
				}
				p.payload = v
				if len(created) > 0 {
					o.log.Debug("extended path", zap.Int("key_len", len(seq)), zap.Int("new_nodes", len(created)))
				}
				return v, true, nil
			}
			slot = &p.equal
		case -1:
			slot = &p.less
		default:
			slot = &p.greater
		}
		parent = p
	}
}

// unwind releases nodes linked during a failed insert, deepest first.
func (o ops[S, V]) unwind(created []**Node[S, V]) {
	for i := len(created) - 1; i >= 0; i-- {
		slot := created[i]
		if n := *slot; n != nil && n.dead() {
			*slot = nil
			o.alloc.DeleteNode(n)
		}
	}
	o.log.Debug("unwound failed insert", zap.Int("released_nodes", len(created)))
}

// find returns the payload of the longest stored key that is a prefix of
// seq, together with the length of that key. It returns nil, 0 if no stored
// key is a prefix of seq.
func find[S cmp.Ordered, V any](start *Node[S, V], seq []S) (*V, int) {
	var (
		found  *V
		latest int
	)
	for p, i := start, 0; p != nil && i < len(seq); {
		switch cmp.Compare(seq[i], p.symbol) {
		case 0:
			i++
			if p.payload != nil {
				found, latest = p.payload, i
			}
			p = p.equal
		case -1:
			p = p.less
		default:
			p = p.greater
		}
	}
	return found, latest
}

// remove drops the payload stored under seq and prunes every node left
// without payload and successors on the way back up. It reports whether a
// payload was released.
func (o ops[S, V]) remove(slot **Node[S, V], seq []S) bool {
	p := *slot
	if p == nil || len(seq) == 0 {
		return false
	}

	removed := false
	switch cmp.Compare(seq[0], p.symbol) {
	case 0:
		if len(seq) == 1 {
			if p.payload != nil {
				o.alloc.DeletePayload(p.payload)
				p.payload = nil
				removed = true
			}
		} else {
			removed = o.remove(&p.equal, seq[1:])
		}
	case -1:
		removed = o.remove(&p.less, seq)
	default:
		removed = o.remove(&p.greater, seq)
	}

	if p.dead() {
		o.log.Debug("pruned node", zap.Any("symbol", p.symbol))
		*slot = nil
		p.parent = nil
		o.alloc.DeleteNode(p)
	}
	return removed
}

// forEach calls f for every stored key below n in ascending order, each key
// prefixed with prefix. It stops early once f returns false.
func forEach[S cmp.Ordered, V any](n *Node[S, V], prefix []S, f func(key []S, value V) bool) bool {
	if n == nil {
		return true
	}
	if !forEach(n.less, prefix, f) {
		return false
	}
	// three-index slice so siblings never share a backing array
	key := append(prefix[:len(prefix):len(prefix)], n.symbol)
	if n.payload != nil && !f(key, *n.payload) {
		return false
	}
	if !forEach(n.equal, key, f) {
		return false
	}
	return forEach(n.greater, prefix, f)
}
