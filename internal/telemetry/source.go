// Package telemetry pulls snapshots from the live application and publishes
// the latest one for scaling-policy consumers, substituting synthetic
// readings whenever real data is unavailable.
package telemetry

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/cloudmirror/simulation-core/pkg/models"
)

// ErrNotAvailable reports that no snapshot source could be read.
var ErrNotAvailable = fmt.Errorf("telemetry snapshot not available")

// Source pulls the latest snapshot from wherever the telemetry producer
// left it.
type Source interface {
	FetchLatest() (models.Snapshot, error)
}

// FileSource reads the snapshot JSON from the first readable path in its
// lookup list.
type FileSource struct {
	paths []string
}

// NewFileSource creates a source over the given lookup paths, tried in order.
func NewFileSource(paths []string) *FileSource {
	return &FileSource{paths: paths}
}

// FetchLatest returns the parsed snapshot from the first path that exists,
// or ErrNotAvailable when none does.
func (s *FileSource) FetchLatest() (models.Snapshot, error) {
	for _, path := range s.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return ParseSnapshot(data), nil
	}
	return models.Snapshot{}, ErrNotAvailable
}

// ParseSnapshot extracts a snapshot from JSON bytes field by field. A
// missing or malformed field defaults to its zero value rather than failing
// the whole reading, so partially-written producer files still yield usable
// data.
func ParseSnapshot(data []byte) models.Snapshot {
	doc := string(data)
	return models.Snapshot{
		ProjectName:       gjson.Get(doc, "projectName").String(),
		ResponseTimeMs:    gjson.Get(doc, "responseTime").Float(),
		CPUUsagePct:       gjson.Get(doc, "cpuUsage").Float(),
		MemoryUsageMB:     gjson.Get(doc, "memoryUsage").Float(),
		RequestCount:      gjson.Get(doc, "requestCount").Float(),
		ErrorCount:        gjson.Get(doc, "errorCount").Float(),
		SuccessCount:      gjson.Get(doc, "successCount").Float(),
		ActiveConnections: gjson.Get(doc, "activeConnections").Float(),
		Pages: models.PageViews{
			Home:  gjson.Get(doc, "pages.home").Float(),
			API:   gjson.Get(doc, "pages.api").Float(),
			Other: gjson.Get(doc, "pages.other").Float(),
		},
	}
}
