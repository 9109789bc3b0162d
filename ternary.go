// Package ternary is a string keyed dictionary on top of the ternary search
// tree in pkg/tst. Keys are split into runes; optionally they are brought to
// a Unicode normal form first so that differently composed spellings of the
// same text find each other.
package ternary

import (
	"github.com/khalid-nowaf/ternary/pkg/tst"
	"golang.org/x/text/unicode/norm"
)

type Dictionary[V any] struct {
	tree      *tst.Tree[rune, V]
	normalize bool
	form      norm.Form
	treeOpts  []tst.Option[rune, V]
}

type Option[V any] func(*Dictionary[V]) *Dictionary[V]

// WithNormalization brings every key and every looked up text to form.
func WithNormalization[V any](form norm.Form) Option[V] {
	return func(d *Dictionary[V]) *Dictionary[V] {
		d.normalize = true
		d.form = form
		return d
	}
}

// WithTreeOptions passes options (allocator, logger) to the underlying tree.
func WithTreeOptions[V any](opts ...tst.Option[rune, V]) Option[V] {
	return func(d *Dictionary[V]) *Dictionary[V] {
		d.treeOpts = append(d.treeOpts, opts...)
		return d
	}
}

func NewDictionary[V any](opts ...Option[V]) *Dictionary[V] {
	d := &Dictionary[V]{}
	for _, opt := range opts {
		d = opt(d)
	}
	d.tree = tst.New(d.treeOpts...)
	return d
}

func (d *Dictionary[V]) runes(s string) []rune {
	if d.normalize {
		s = d.form.String(s)
	}
	return []rune(s)
}

// Insert stores value under key unless key is already present, and returns
// the stored value. An empty key stores nothing.
func (d *Dictionary[V]) Insert(key string, value V) (V, error) {
	p, err := d.tree.Insert(d.runes(key), value)
	if err != nil || p == nil {
		var zero V
		return zero, err
	}
	return *p, nil
}

// Find returns the value stored under exactly key.
func (d *Dictionary[V]) Find(key string) (V, bool) {
	p, ok := d.tree.Get(d.runes(key))
	if !ok {
		var zero V
		return zero, false
	}
	return *p, true
}

// FindPrefix returns the longest stored key that text starts with, and its value.
func (d *Dictionary[V]) FindPrefix(text string) (prefix string, value V, ok bool) {
	r := d.runes(text)
	p, n := d.tree.Find(r)
	if p == nil {
		return "", value, false
	}
	return string(r[:n]), *p, true
}

// Remove deletes key and reports whether it was present.
func (d *Dictionary[V]) Remove(key string) bool {
	return d.tree.Remove(d.runes(key))
}

// ForEach calls f for every entry in ascending key order until f returns false.
func (d *Dictionary[V]) ForEach(f func(key string, value V) bool) {
	d.tree.ForEach(func(key []rune, value V) bool {
		return f(string(key), value)
	})
}

// Keys returns all keys in ascending order.
func (d *Dictionary[V]) Keys() []string {
	keys := make([]string, 0, d.Len())
	d.ForEach(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (d *Dictionary[V]) Len() int {
	return d.tree.Len()
}

// Tree exposes the underlying tree, e.g. to measure it with package trifurcate.
func (d *Dictionary[V]) Tree() *tst.Tree[rune, V] {
	return d.tree
}

// Clone returns an independent copy of the dictionary.
func (d *Dictionary[V]) Clone() (*Dictionary[V], error) {
	tree, err := d.tree.Clone()
	if err != nil {
		return nil, err
	}
	c := *d
	c.tree = tree
	return &c, nil
}

// Token is a stored key found in a text. Start and End are rune offsets.
type Token[V any] struct {
	Key        string
	Start, End int
	Value      V
}

// Tokenize splits text into the longest stored keys, left to right. Runes
// that start no stored key are skipped.
func (d *Dictionary[V]) Tokenize(text string) []Token[V] {
	r := d.runes(text)
	tokens := []Token[V]{}
	d.tree.Scan(r, func(m tst.Match[V]) bool {
		tokens = append(tokens, Token[V]{
			Key:   string(r[m.Start:m.End]),
			Start: m.Start,
			End:   m.End,
			Value: *m.Value,
		})
		return true
	})
	return tokens
}
