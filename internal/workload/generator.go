// Package workload materializes the schedulable task set for one run.
//
// Two classes track live traffic (page rendering and API processing scale
// with the load and response factors); the static-asset, image-processing
// and build classes model fixed-cost operational work and stay constant.
package workload

import (
	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// classSpec describes how one workload class is generated.
type classSpec struct {
	Class        models.WorkloadClass
	BaseCount    int
	MinCount     int
	CountScaled  bool // count = max(MinCount, round(BaseCount * load factor))
	BaseLength   float64
	LengthStep   float64
	LengthScaled bool // length multiplied by the response factor
	Cores        int
	FileSizeKB   int
	OutputSizeKB int
}

// classTable is iterated in order; task IDs are assigned sequentially across
// it, so generation order is stable for any given scale factors.
var classTable = []classSpec{
	{Class: models.ClassPageRendering, BaseCount: 6, MinCount: 4, CountScaled: true,
		BaseLength: 9000, LengthStep: 1200, LengthScaled: true, Cores: 2, FileSizeKB: 400, OutputSizeKB: 350},
	{Class: models.ClassAPIProcessing, BaseCount: 8, MinCount: 5, CountScaled: true,
		BaseLength: 4500, LengthStep: 700, LengthScaled: true, Cores: 1, FileSizeKB: 600, OutputSizeKB: 500},
	{Class: models.ClassStaticAsset, BaseCount: 4, MinCount: 4,
		BaseLength: 1800, LengthStep: 400, Cores: 1, FileSizeKB: 200, OutputSizeKB: 1800},
	{Class: models.ClassImageProcessing, BaseCount: 3, MinCount: 3,
		BaseLength: 16000, LengthStep: 2500, Cores: 3, FileSizeKB: 1200, OutputSizeKB: 900},
	{Class: models.ClassBuildDeploy, BaseCount: 2, MinCount: 2,
		BaseLength: 32000, LengthStep: 6000, Cores: 4, FileSizeKB: 800, OutputSizeKB: 600},
}

// Set is the generated workload: the task list plus the id-to-class mapping
// retained for post-simulation aggregation.
type Set struct {
	Tasks   []models.Task
	ClassOf map[int]models.WorkloadClass
}

// Build generates the scaled task set for the given factors.
func Build(factors models.ScaleFactors) *Set {
	set := &Set{
		ClassOf: make(map[int]models.WorkloadClass),
	}

	id := 0
	for _, spec := range classTable {
		count := spec.BaseCount
		if spec.CountScaled {
			count = utils.RoundAtLeast(float64(spec.BaseCount)*factors.Load, spec.MinCount)
		}

		for i := 0; i < count; i++ {
			length := spec.BaseLength + float64(i)*spec.LengthStep
			if spec.LengthScaled {
				length *= factors.Response
			}

			set.Tasks = append(set.Tasks, models.Task{
				ID:            id,
				Class:         spec.Class,
				LengthUnits:   length,
				RequiredCores: spec.Cores,
				FileSizeKB:    spec.FileSizeKB,
				OutputSizeKB:  spec.OutputSizeKB,
			})
			set.ClassOf[id] = spec.Class
			id++
		}
	}

	return set
}
