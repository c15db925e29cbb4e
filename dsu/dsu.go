// Package dsu provides a weighted quick-union disjoint-set over string
// elements with path compression.
package dsu

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrEmptyElement indicates that an element ID was the empty string.
	ErrEmptyElement = errors.New("dsu: element ID is empty")

	// ErrElementNotFound indicates an operation referenced an unknown element.
	ErrElementNotFound = errors.New("dsu: element not found")

	// ErrDuplicateElement indicates the same element was supplied twice to New.
	ErrDuplicateElement = errors.New("dsu: duplicate element")
)

// DisjointSet is a forest of weighted quick-union trees.
//
// parent maps each element to its parent; a root maps to "". size maps
// each root to the number of elements in its tree and holds no entry for
// non-roots.
type DisjointSet struct {
	parent map[string]string
	size   map[string]int
}

// New builds a DisjointSet with one singleton set per element.
// Duplicate or empty elements are rejected.
// Complexity: O(N).
func New(elements ...string) (*DisjointSet, error) {
	d := &DisjointSet{
		parent: make(map[string]string, len(elements)),
		size:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		if err := d.Add(e); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Add inserts a new singleton set. Inserting an existing element fails
// with ErrDuplicateElement.
func (d *DisjointSet) Add(e string) error {
	if e == "" {
		return ErrEmptyElement
	}
	if _, ok := d.parent[e]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateElement, e)
	}
	d.parent[e] = ""
	d.size[e] = 1

	return nil
}

// Len returns the number of elements across all sets.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Find returns the representative (root) of the set containing e.
// Path compression re-parents every node on the walk directly to the root.
func (d *DisjointSet) Find(e string) (string, error) {
	if e == "" {
		return "", ErrEmptyElement
	}
	if _, ok := d.parent[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrElementNotFound, e)
	}

	root := e
	for d.parent[root] != "" {
		root = d.parent[root]
	}
	for d.parent[e] != "" {
		next := d.parent[e]
		d.parent[e] = root
		e = next
	}

	return root, nil
}

// Union merges the sets containing a and b. The smaller tree is attached
// under the larger tree's root; merging an element with itself or two
// already-connected elements is a no-op.
func (d *DisjointSet) Union(a, b string) error {
	ra, err := d.Find(a)
	if err != nil {
		return err
	}
	rb, err := d.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}

	// attach the smaller tree under the larger root
	if d.size[rb] > d.size[ra] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	delete(d.size, rb)

	return nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b string) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Sets snapshots the current partition. Members of each set are sorted
// lexicographically and the sets are ordered by their first member, so
// the output is deterministic.
// Complexity: O(N log N).
func (d *DisjointSet) Sets() [][]string {
	groups := make(map[string][]string, len(d.size))
	for e := range d.parent {
		root, _ := d.Find(e)
		groups[root] = append(groups[root], e)
	}

	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		sort.Strings(members)
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
