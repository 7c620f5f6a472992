package colour

import (
	"image"
	"math"
	"math/rand"
)

// cluster is a k-means centroid and the share of sampled pixels assigned to it.
type cluster struct {
	Color  Color
	Weight float64
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kmeans clusters colours with a fixed random source so that the same image
// always yields the same clusters.
type kmeans struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

func newKMeans(seed int64) *kmeans {
	return &kmeans{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// samplePixels samples opaque pixels from the image.
// Large images are grid sampled down to roughly maxSamples pixels.
func (k *kmeans) samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > k.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(k.maxSamples))), 1)
	}

	points := make([]point3D, 0, min(totalPixels, k.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := FromColor(img.At(x, y))
			// Transparent pixels carry no colour information.
			if c.A < 255 {
				continue
			}
			points = append(points, point3D{R: float64(c.R), G: float64(c.G), B: float64(c.B)})
			if len(points) >= k.maxSamples {
				return points
			}
		}
	}

	return points
}

// run performs k-means clustering and returns centroids with normalised weights.
func (k *kmeans) run(points []point3D, n int) []cluster {
	if len(points) == 0 || n < 1 {
		return nil
	}
	n = min(n, len(points))

	centroids := k.initializeCentroids(points, n)
	assignments := make([]int, len(points))

	for iter := 0; iter < k.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Fewer than 1% of assignments moved.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := k.recalculateCentroids(points, assignments, n)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(n) < k.convergence {
			break
		}
	}

	weights := make([]float64, n)
	for _, a := range assignments {
		weights[a]++
	}

	clusters := make([]cluster, n)
	for i, c := range centroids {
		clusters[i] = cluster{
			Color:  New(clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)),
			Weight: weights[i] / float64(len(points)),
		}
	}
	return clusters
}

// initializeCentroids picks starting centroids with k-means++.
func (k *kmeans) initializeCentroids(points []point3D, n int) []point3D {
	centroids := make([]point3D, 0, n)
	centroids = append(centroids, points[k.rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < n {
		total := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := k.rng.Float64() * total
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

func (k *kmeans) recalculateCentroids(points []point3D, assignments []int, n int) []point3D {
	sums := make([]point3D, n)
	counts := make([]int, n)

	for i, point := range points {
		c := assignments[i]
		sums[c].R += point.R
		sums[c].G += point.G
		sums[c].B += point.B
		counts[c]++
	}

	centroids := make([]point3D, n)
	for i := range n {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster, reseed from the data.
			centroids[i] = points[k.rng.Intn(len(points))]
		}
	}

	return centroids
}

func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
