// Package cluster implements the seeded k-means fit, elbow series, role
// labeling, and PCA projection used to group players into offensive roles.
package cluster

import (
	"fmt"
	"math"
	"math/rand"
)

// maxIterations caps a single k-means run. Non-convergence is not an
// error: the restart loop keeps the best solution found.
const maxIterations = 300

// Result holds the outcome of one k-means fit.
type Result struct {
	K           int
	Assignments []int       // cluster index per input row, 0-based
	Centroids   [][]float64 // k rows of len(X[0]) columns
	WSS         float64     // total within-cluster sum of squares
	Converged   bool
	Iterations  int
}

// KMeans fits k clusters to X by Euclidean distance, keeping the best
// (minimum WSS) of restarts runs. The fit is deterministic for a fixed
// seed, restart count, and row order: all randomness flows from a single
// source seeded here.
func KMeans(X [][]float64, k int, seed int64, restarts int) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d", k)
	}
	if len(X) < k {
		return nil, fmt.Errorf("need at least %d rows for k=%d, got %d", k, k, len(X))
	}
	if restarts < 1 {
		restarts = 1
	}

	rng := rand.New(rand.NewSource(seed))
	var best *Result
	for r := 0; r < restarts; r++ {
		res := fitOnce(X, k, rng)
		if best == nil || res.WSS < best.WSS {
			best = res
		}
	}
	return best, nil
}

// fitOnce runs one k-means fit with centroids initialized from k rows
// sampled without replacement.
func fitOnce(X [][]float64, k int, rng *rand.Rand) *Result {
	n, dim := len(X), len(X[0])

	centroids := make([][]float64, k)
	for i, p := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), X[p]...)
	}

	assign := make([]int, n)
	converged := false
	iter := 0
	for ; iter < maxIterations; iter++ {
		changed := false
		for i, row := range X {
			c := nearest(row, centroids)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if iter > 0 && !changed {
			converged = true
			break
		}

		// Recompute centroids as cluster means.
		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, row := range X {
			c := assign[i]
			counts[c]++
			for j, v := range row {
				sums[c][j] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster: reseed from the row farthest from its
				// current centroid so every cluster stays populated.
				centroids[c] = append([]float64(nil), X[farthest(X, centroids, assign)]...)
				continue
			}
			for j := range sums[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	return &Result{
		K:           k,
		Assignments: assign,
		Centroids:   centroids,
		WSS:         totalWSS(X, centroids, assign),
		Converged:   converged,
		Iterations:  iter,
	}
}

// ElbowSeries returns the best-of-restarts WSS for k = 1..kmax. Each k
// starts from the same seed, so the series is reproducible regardless
// of which k values the caller inspects.
func ElbowSeries(X [][]float64, kmax int, seed int64, restarts int) ([]float64, error) {
	if kmax < 1 {
		return nil, fmt.Errorf("kmax must be >= 1, got %d", kmax)
	}
	if kmax > len(X) {
		kmax = len(X)
	}
	out := make([]float64, kmax)
	for k := 1; k <= kmax; k++ {
		res, err := KMeans(X, k, seed, restarts)
		if err != nil {
			return nil, err
		}
		out[k-1] = res.WSS
	}
	return out, nil
}

func nearest(row []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, cent := range centroids {
		if d := sqDist(row, cent); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// farthest returns the index of the row with the greatest distance to
// its assigned centroid. Ties break toward the lowest index.
func farthest(X [][]float64, centroids [][]float64, assign []int) int {
	best, bestDist := 0, -1.0
	for i, row := range X {
		if d := sqDist(row, centroids[assign[i]]); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func totalWSS(X [][]float64, centroids [][]float64, assign []int) float64 {
	s := 0.0
	for i, row := range X {
		s += sqDist(row, centroids[assign[i]])
	}
	return s
}

func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
