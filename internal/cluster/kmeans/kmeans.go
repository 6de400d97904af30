// Package kmeans implements deterministic k-means clustering.
//
// All initialization randomness is drawn from the caller's seed, so
// identical vectors, k and seed always produce bit-identical labels and
// centers across runs and process restarts.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"detrag/internal/distance"
	"detrag/internal/domain"
)

const (
	restarts = 10
	maxIter  = 100
)

// Clusterer partitions vectors with Lloyd's algorithm seeded by k-means++.
// It runs a fixed number of restarts and keeps the result with the lowest
// total within-cluster squared distance; the earlier restart wins exact ties.
type Clusterer struct{}

// New creates a k-means clusterer.
func New() *Clusterer { return &Clusterer{} }

// Name returns the identifier of this clusterer implementation.
func (c *Clusterer) Name() string { return "kmeans" }

// FitPredict assigns each vector a label in [0, k) and returns the final
// cluster centers. A label may end up with zero members; its center then
// keeps its initial value and downstream consumers skip it.
func (c *Clusterer) FitPredict(vectors [][]float64, k int, seed int64) ([]int, [][]float64, error) {
	n := len(vectors)
	if k < 1 || k > n {
		return nil, nil, fmt.Errorf("k=%d with %d vectors: %w", k, n, domain.ErrInvalidClusterCount)
	}
	rng := rand.New(rand.NewSource(seed))
	var bestLabels []int
	var bestCenters [][]float64
	bestInertia := math.Inf(1)
	for r := 0; r < restarts; r++ {
		centers := initCenters(vectors, k, rng)
		labels, centers, inertia := lloyd(vectors, centers)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
			bestCenters = centers
		}
	}
	return bestLabels, bestCenters, nil
}

// initCenters picks k starting centers with k-means++ seeding: the first
// uniformly, each next weighted by squared distance to the nearest chosen
// center.
func initCenters(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(vectors[rng.Intn(len(vectors))]))
	d2 := make([]float64, len(vectors))
	for len(centers) < k {
		total := 0.0
		for i, vec := range vectors {
			best := math.Inf(1)
			for _, center := range centers {
				if d := distance.SquaredL2(vec, center); d < best {
					best = d
				}
			}
			d2[i] = best
			total += best
		}
		var next int
		if total == 0 {
			// All points coincide with chosen centers
			next = rng.Intn(len(vectors))
		} else {
			target := rng.Float64() * total
			acc := 0.0
			next = len(vectors) - 1
			for i, d := range d2 {
				acc += d
				if acc >= target {
					next = i
					break
				}
			}
		}
		centers = append(centers, clone(vectors[next]))
	}
	return centers
}

// lloyd iterates assignment and center updates until assignments stop
// changing or maxIter is reached. Assignment ties go to the lowest center
// index; empty clusters keep their seed center.
func lloyd(vectors, centers [][]float64) ([]int, [][]float64, float64) {
	n := len(vectors)
	k := len(centers)
	dim := len(vectors[0])
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, vec := range vectors {
			best := 0
			bestDist := math.Inf(1)
			for j, center := range centers {
				if d := distance.SquaredL2(vec, center); d < bestDist {
					bestDist = d
					best = j
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		sums := make([][]float64, k)
		for j := range sums {
			sums[j] = make([]float64, dim)
		}
		counts := make([]int, k)
		for i, vec := range vectors {
			j := labels[i]
			counts[j]++
			for d := range vec {
				sums[j][d] += vec[d]
			}
		}
		for j := range centers {
			if counts[j] == 0 {
				continue
			}
			for d := 0; d < dim; d++ {
				centers[j][d] = sums[j][d] / float64(counts[j])
			}
		}
	}
	inertia := 0.0
	for i, vec := range vectors {
		inertia += distance.SquaredL2(vec, centers[labels[i]])
	}
	return labels, centers, inertia
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
