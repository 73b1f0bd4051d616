// Package tree implements the adaptive binary partitioning tree: the
// entropy-driven build, the depth-first render, and the
// similarity-based pruning pass (spec §4.D).
package tree

import (
	"github.com/tgvox/tgvox/internal/grid"
	"github.com/tgvox/tgvox/internal/hsla"
	"github.com/tgvox/tgvox/internal/stats"
)

// entropyLeafThreshold is the early-termination bound: a region whose
// hue-bin entropy falls below this becomes a leaf without searching
// for a split (spec §4.D step 3).
const entropyLeafThreshold = 0.1

// Node is a node of the partition tree. Leaves have Left == Right == nil.
// Nodes own their children exclusively; the tree has no sharing or
// cycles (spec §9).
type Node struct {
	Rect          stats.Rect
	AverageColor  hsla.Pixel
	Left, Right   *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Config holds the pruning parameters (spec §3 "Pruning configuration").
type Config struct {
	MinimumSimilarityPercentage float64
	ColorToleranceThreshold     float64
}

// Build constructs the partition tree for the full extent of in's source
// grid, starting from the given root rectangle.
func Build(in *stats.Integral, root stats.Rect) *Node {
	return buildNode(in, root)
}

func buildNode(in *stats.Integral, r stats.Rect) *Node {
	n := &Node{
		Rect:         r,
		AverageColor: in.MeanColor(r),
	}

	w := r.LRX - r.ULX + 1
	h := r.LRY - r.ULY + 1
	if w == 1 && h == 1 {
		return n
	}

	if in.Entropy(r) < entropyLeafThreshold {
		return n
	}

	cut, ok := findOptimalSplit(in, r, w, h)
	if !ok {
		// No legal cut exists (should not happen once the 1x1 and
		// zero-entropy cases above are filtered); fall back to a leaf.
		return n
	}

	n.Left = buildNode(in, cut.first)
	n.Right = buildNode(in, cut.second)
	return n
}

// splitCut is a candidate partition of a region into two children.
type splitCut struct {
	first, second stats.Rect
	weighted      float64
}

// findOptimalSplit enumerates every horizontal cut, then every vertical
// cut (spec §4.D), scoring each by weighted child entropy and keeping
// the minimum; ties go to the first-encountered cut (horizontal before
// vertical, ascending coordinate within an orientation). Degenerate
// single-row/single-column regions only consider the axis that still
// has room to cut.
func findOptimalSplit(in *stats.Integral, r stats.Rect, w, h int) (splitCut, bool) {
	var best splitCut
	found := false

	consider := func(c splitCut) {
		if !found || c.weighted < best.weighted {
			best = c
			found = true
		}
	}

	total := float64(r.Area())

	if h > 1 {
		for splitY := r.ULY; splitY < r.LRY; splitY++ {
			top := stats.Rect{ULX: r.ULX, ULY: r.ULY, LRX: r.LRX, LRY: splitY}
			bottom := stats.Rect{ULX: r.ULX, ULY: splitY + 1, LRX: r.LRX, LRY: r.LRY}
			w := weighted(in, top, bottom, total)
			consider(splitCut{first: top, second: bottom, weighted: w})
		}
	}
	if w > 1 {
		for splitX := r.ULX; splitX < r.LRX; splitX++ {
			left := stats.Rect{ULX: r.ULX, ULY: r.ULY, LRX: splitX, LRY: r.LRY}
			right := stats.Rect{ULX: splitX + 1, ULY: r.ULY, LRX: r.LRX, LRY: r.LRY}
			wt := weighted(in, left, right, total)
			consider(splitCut{first: left, second: right, weighted: wt})
		}
	}

	return best, found
}

func weighted(in *stats.Integral, a, b stats.Rect, total float64) float64 {
	e1 := in.Entropy(a)
	e2 := in.Entropy(b)
	a1 := float64(a.Area())
	a2 := float64(b.Area())
	return (e1*a1 + e2*a2) / total
}

// Render paints every leaf's representative color into its rectangle
// of a fresh grid of width w and height h. Every pixel is written
// exactly once since leaves partition the image disjointly.
func Render(root *Node, w, h int) *grid.Grid {
	g := grid.New(w, h)
	renderNode(root, g)
	return g
}

func renderNode(n *Node, g *grid.Grid) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		for y := n.Rect.ULY; y <= n.Rect.LRY; y++ {
			for x := n.Rect.ULX; x <= n.Rect.LRX; x++ {
				g.Set(x, y, n.AverageColor)
			}
		}
		return
	}
	renderNode(n.Left, g)
	renderNode(n.Right, g)
}

// Prune collapses subtrees whose reconstruction would be visually
// indistinguishable from their node's own representative color, per
// spec §4.D. Post-order: children are pruned before the parent is
// evaluated, so a node's shouldPrune decision already sees the
// post-pruning shape of its subtree.
func Prune(n *Node, cfg Config) {
	if n == nil || n.IsLeaf() {
		return
	}
	Prune(n.Left, cfg)
	Prune(n.Right, cfg)

	if shouldPrune(n, cfg) {
		n.Left = nil
		n.Right = nil
	}
}

// shouldPrune walks n's subtree, accumulating total leaf area T and the
// area K of leaves whose color is within cfg.ColorToleranceThreshold
// (under PruneDistance) of n's own representative color. It reports
// true when T > 0 and K/T >= cfg.MinimumSimilarityPercentage.
func shouldPrune(n *Node, cfg Config) bool {
	var total, similar int
	accumulate(n, n.AverageColor, cfg.ColorToleranceThreshold, &total, &similar)
	if total <= 0 {
		return false
	}
	return float64(similar)/float64(total) >= cfg.MinimumSimilarityPercentage
}

func accumulate(n *Node, target hsla.Pixel, tolerance float64, total, similar *int) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		area := n.Rect.Area()
		*total += area
		if hsla.PruneDistance(n.AverageColor, target) <= tolerance {
			*similar += area
		}
		return
	}
	accumulate(n.Left, target, tolerance, total, similar)
	accumulate(n.Right, target, tolerance, total, similar)
}

// CountLeaves is a pure traversal counting the tree's leaf nodes.
func CountLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return CountLeaves(n.Left) + CountLeaves(n.Right)
}
