package telemetry

import (
	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// SyntheticGenerator produces plausible snapshots when no real telemetry is
// available, so downstream components never branch on "no data". Bands match
// a lightly-loaded web application.
type SyntheticGenerator struct {
	rng *utils.RandSource
}

// NewSyntheticGenerator creates a generator; seed 0 selects a time-based
// seed, any other value makes output reproducible.
func NewSyntheticGenerator(seed int64) *SyntheticGenerator {
	return &SyntheticGenerator{rng: utils.NewRandSource(seed)}
}

// Generate returns one synthetic snapshot.
func (g *SyntheticGenerator) Generate() models.Snapshot {
	return models.Snapshot{
		ProjectName:       "synthetic",
		ResponseTimeMs:    g.rng.UniformFloat64(80, 200),
		CPUUsagePct:       g.rng.UniformFloat64(25, 60),
		MemoryUsageMB:     g.rng.UniformFloat64(40, 80),
		RequestCount:      g.rng.UniformFloat64(0, 200),
		ErrorCount:        g.rng.UniformFloat64(0, 10),
		ActiveConnections: g.rng.UniformFloat64(0, 20),
		Pages: models.PageViews{
			Home:  g.rng.UniformFloat64(0, 50),
			API:   g.rng.UniformFloat64(0, 100),
			Other: g.rng.UniformFloat64(0, 30),
		},
		Synthetic: true,
	}
}
