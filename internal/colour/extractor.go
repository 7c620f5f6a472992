package colour

import (
	"fmt"
	"image"
	"sort"

	"cogentcore.org/core/colors/cam/hct"
)

// FallbackSeed is used when an image has no usable chromatic colour (Google Blue).
var FallbackSeed = New(0x42, 0x85, 0xF4)

// SeedExtractor picks the source colour of a scheme from an image.
type SeedExtractor struct {
	// Clusters is the number of k-means clusters to score.
	Clusters int
	// MinChroma discards clusters that are too grey to seed a palette.
	MinChroma float32
	// RandomSeed makes clustering reproducible.
	RandomSeed int64
}

// NewSeedExtractor returns an extractor with default settings.
func NewSeedExtractor() *SeedExtractor {
	return &SeedExtractor{
		Clusters:   8,
		MinChroma:  5,
		RandomSeed: 42,
	}
}

// Extract returns the highest scoring cluster colour of img.
// Clusters are scored by population weighted with HCT chroma. If no cluster
// reaches MinChroma, FallbackSeed is returned.
func (e *SeedExtractor) Extract(img image.Image) (Color, error) {
	if img == nil {
		return Color{}, fmt.Errorf("image cannot be nil")
	}
	if e.Clusters < 1 || e.Clusters > 256 {
		return Color{}, fmt.Errorf("cluster count must be 1-256, got %d", e.Clusters)
	}

	km := newKMeans(e.RandomSeed)
	points := km.samplePixels(img)
	if len(points) == 0 {
		return Color{}, fmt.Errorf("no opaque pixels found in image")
	}

	clusters := km.run(points, e.Clusters)

	type scored struct {
		color Color
		score float64
	}
	candidates := make([]scored, 0, len(clusters))
	for _, c := range clusters {
		h := hct.FromColor(c.Color.NRGBA())
		if h.Chroma < e.MinChroma {
			continue
		}
		candidates = append(candidates, scored{color: c.Color, score: c.Weight * float64(h.Chroma)})
	}

	if len(candidates) == 0 {
		return FallbackSeed, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].color, nil
}
