package model

import (
	"math/rand"
	"sort"
)

const leafFeature = -1

// treeNode is one node of a CART tree, stored flat so artifacts serialize as
// plain JSON. Internal nodes route Feature <= Threshold left; leaves carry
// per-class sample counts.
type treeNode struct {
	Feature   int     `json:"f"`
	Threshold float64 `json:"t,omitempty"`
	Left      int     `json:"l,omitempty"`
	Right     int     `json:"r,omitempty"`
	Counts    []int   `json:"c,omitempty"`
}

// Tree is a single CART classifier over encoded feature vectors.
// Importances accumulates each feature's weighted gini decrease during
// growth, unnormalized.
type Tree struct {
	Nodes       []treeNode `json:"nodes"`
	Importances []float64  `json:"importances,omitempty"`
}

// predictCounts walks the tree and returns the leaf's class counts.
func (t *Tree) predictCounts(v []float64) []int {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Feature == leafFeature {
			return n.Counts
		}
		if v[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type treeBuilder struct {
	x           [][]float64
	y           []int
	nClasses    int
	maxDepth    int
	minSplit    int
	maxFeatures int
	rng         *rand.Rand

	nodes       []treeNode
	importances []float64
	total       int
}

// growTree fits one CART tree on the rows named by indices, sampling
// maxFeatures candidate features at every split.
func growTree(x [][]float64, y []int, indices []int, nClasses int, cfg forestParams, rng *rand.Rand) Tree {
	b := &treeBuilder{
		x:           x,
		y:           y,
		nClasses:    nClasses,
		maxDepth:    cfg.maxDepth,
		minSplit:    cfg.minSamplesSplit,
		maxFeatures: cfg.maxFeatures,
		rng:         rng,
		importances: make([]float64, len(x[0])),
		total:       len(indices),
	}
	b.build(indices, 0)
	return Tree{Nodes: b.nodes, Importances: b.importances}
}

// build grows the subtree for indices and returns its node index.
func (b *treeBuilder) build(indices []int, depth int) int {
	counts := b.classCounts(indices)

	if depth >= b.maxDepth || len(indices) < b.minSplit || isPure(counts) {
		return b.leaf(counts)
	}

	split, ok := b.bestSplit(indices, counts)
	if !ok {
		return b.leaf(counts)
	}

	b.importances[split.feature] += float64(len(indices)) / float64(b.total) * split.gain

	left, right := partition(b.x, indices, split.feature, split.threshold)

	// Reserve this node before recursing so children index correctly.
	idx := len(b.nodes)
	b.nodes = append(b.nodes, treeNode{Feature: split.feature, Threshold: split.threshold})
	b.nodes[idx].Left = b.build(left, depth+1)
	b.nodes[idx].Right = b.build(right, depth+1)
	return idx
}

func (b *treeBuilder) leaf(counts []int) int {
	b.nodes = append(b.nodes, treeNode{Feature: leafFeature, Counts: counts})
	return len(b.nodes) - 1
}

func (b *treeBuilder) classCounts(indices []int) []int {
	counts := make([]int, b.nClasses)
	for _, i := range indices {
		counts[b.y[i]]++
	}
	return counts
}

type splitCandidate struct {
	feature   int
	threshold float64
	gain      float64
}

// bestSplit scans a random feature subset for the split with the largest
// gini decrease. Returns false when no split improves impurity.
func (b *treeBuilder) bestSplit(indices []int, counts []int) (splitCandidate, bool) {
	parent := gini(counts, len(indices))

	best := splitCandidate{gain: 0}
	found := false

	for _, feature := range b.sampleFeatures() {
		threshold, gain, ok := b.scanFeature(indices, feature, parent)
		if ok && (!found || gain > best.gain) {
			best = splitCandidate{feature: feature, threshold: threshold, gain: gain}
			found = true
		}
	}
	return best, found
}

// sampleFeatures draws maxFeatures distinct feature indices.
func (b *treeBuilder) sampleFeatures() []int {
	width := len(b.importances)
	perm := b.rng.Perm(width)
	if b.maxFeatures < width {
		perm = perm[:b.maxFeatures]
	}
	return perm
}

// scanFeature finds the best threshold for one feature via a sorted sweep
// with running class counts.
func (b *treeBuilder) scanFeature(indices []int, feature int, parentGini float64) (float64, float64, bool) {
	n := len(indices)
	order := make([]int, n)
	copy(order, indices)
	sort.Slice(order, func(i, j int) bool {
		return b.x[order[i]][feature] < b.x[order[j]][feature]
	})

	leftCounts := make([]int, b.nClasses)
	rightCounts := b.classCounts(indices)

	bestGain, bestThreshold := 0.0, 0.0
	found := false

	for i := 0; i < n-1; i++ {
		c := b.y[order[i]]
		leftCounts[c]++
		rightCounts[c]--

		cur, next := b.x[order[i]][feature], b.x[order[i+1]][feature]
		if cur == next {
			continue
		}

		nLeft, nRight := i+1, n-i-1
		weighted := (float64(nLeft)*gini(leftCounts, nLeft) + float64(nRight)*gini(rightCounts, nRight)) / float64(n)
		gain := parentGini - weighted
		if gain > bestGain {
			bestGain = gain
			bestThreshold = (cur + next) / 2
			found = true
		}
	}
	return bestThreshold, bestGain, found
}

func partition(x [][]float64, indices []int, feature int, threshold float64) ([]int, []int) {
	var left, right []int
	for _, i := range indices {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return left, right
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		impurity -= p * p
	}
	return impurity
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}
