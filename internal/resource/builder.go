// Package resource builds the fixed datacenter topology: three host classes
// and five VM roles, sized by the scale factors of the current run.
package resource

import (
	"fmt"

	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// Role describes one VM role's base sizing. Roles are iterated in order, so
// per-role derived values (MIPS, bandwidth, disk) key off the index.
type Role struct {
	Name      string
	BaseCores int
	BaseRAMMB int
}

// Roles is the fixed fleet, in creation order.
var Roles = []Role{
	{Name: "app-server", BaseCores: 4, BaseRAMMB: 4096},
	{Name: "api-server", BaseCores: 2, BaseRAMMB: 2048},
	{Name: "static-server", BaseCores: 2, BaseRAMMB: 2048},
	{Name: "database", BaseCores: 4, BaseRAMMB: 4096},
	{Name: "build-ci", BaseCores: 6, BaseRAMMB: 8192},
}

// hostClass describes one host class's base capacity. Scaled classes grow
// with the datacenter-level factor but never shrink below MinCores.
type hostClass struct {
	Class         string
	BaseCores     int
	MinCores      int
	MIPSPerCore   float64
	RAMMB         int
	StorageMB     int
	BandwidthMbps int
	Scaled        bool
}

var hostClasses = []hostClass{
	{Class: "general-compute", BaseCores: 32, MinCores: 16, MIPSPerCore: 2800, RAMMB: 65536, StorageMB: 500000, BandwidthMbps: 25000, Scaled: true},
	{Class: "general-compute-smaller", BaseCores: 20, MinCores: 12, MIPSPerCore: 2500, RAMMB: 32768, StorageMB: 300000, BandwidthMbps: 20000, Scaled: true},
	{Class: "high-bandwidth", BaseCores: 8, MinCores: 8, MIPSPerCore: 2000, RAMMB: 16384, StorageMB: 1000000, BandwidthMbps: 50000, Scaled: false},
}

// Per-role derived sizing constants.
const (
	baseMIPS      = 2200
	mipsStep      = 600
	baseBandwidth = 1200
	bandwidthStep = 400
	baseDiskMB    = 12000
	diskStepMB    = 8000

	minVMCores = 1
	minVMRAMMB = 1024
)

// CostCharacteristics carries the datacenter pricing used by cost analysis.
type CostCharacteristics struct {
	PerSecond    float64
	PerMBRAM     float64
	PerMBStorage float64
	PerMbpsBw    float64
}

// Model is the built datacenter: hosts, the VM fleet and pricing.
type Model struct {
	Hosts []models.HostSpec
	VMs   []models.VMSpec
	Cost  CostCharacteristics
}

// Build constructs the datacenter model. The per-VM factors size each role;
// dcScale sizes host capacity; mipsScale sizes per-VM processing rates. All
// three are 1.0 for runs that are not telemetry-driven.
func Build(factors models.ScaleFactors, dcScale, mipsScale float64) (*Model, error) {
	hosts := make([]models.HostSpec, 0, len(hostClasses))
	for _, hc := range hostClasses {
		cores := hc.BaseCores
		if hc.Scaled {
			cores = utils.FloorAtLeast(float64(hc.BaseCores)*dcScale, hc.MinCores)
		}
		hosts = append(hosts, models.HostSpec{
			Class:         hc.Class,
			Cores:         cores,
			MIPSPerCore:   hc.MIPSPerCore,
			RAMMB:         hc.RAMMB,
			StorageMB:     hc.StorageMB,
			BandwidthMbps: hc.BandwidthMbps,
		})
	}

	vms := make([]models.VMSpec, 0, len(Roles))
	for i, role := range Roles {
		vms = append(vms, models.VMSpec{
			Role:          role.Name,
			Cores:         utils.FloorAtLeast(float64(role.BaseCores)*factors.CPU, minVMCores),
			RAMMB:         utils.FloorAtLeast(float64(role.BaseRAMMB)*factors.Response*factors.Load, minVMRAMMB),
			BandwidthMbps: baseBandwidth + i*bandwidthStep,
			MIPS:          float64(baseMIPS+i*mipsStep) * mipsScale,
			DiskMB:        baseDiskMB + i*diskStepMB,
		})
	}

	model := &Model{
		Hosts: hosts,
		VMs:   vms,
		Cost: CostCharacteristics{
			PerSecond:    2.8,
			PerMBRAM:     0.048,
			PerMBStorage: 0.0009,
			PerMbpsBw:    0.0,
		},
	}
	if err := model.validate(); err != nil {
		return nil, err
	}
	return model, nil
}

// validate enforces the sizing invariants. The clamp/floor rules make a
// violation unreachable from any snapshot; a failure here is a programming
// error and aborts the run.
func (m *Model) validate() error {
	if len(m.Hosts) != len(hostClasses) || len(m.VMs) != len(Roles) {
		return fmt.Errorf("resource model incomplete: %d hosts, %d vms", len(m.Hosts), len(m.VMs))
	}
	for _, h := range m.Hosts {
		if h.Cores < 1 || h.RAMMB < 1 {
			return fmt.Errorf("host %s sized below floor: %d cores, %d MB", h.Class, h.Cores, h.RAMMB)
		}
	}
	for _, vm := range m.VMs {
		if vm.Cores < minVMCores || vm.RAMMB < minVMRAMMB {
			return fmt.Errorf("vm %s sized below floor: %d cores, %d MB", vm.Role, vm.Cores, vm.RAMMB)
		}
	}
	return nil
}

// TotalCores returns the aggregate host core count, reported at startup.
func (m *Model) TotalCores() int {
	total := 0
	for _, h := range m.Hosts {
		total += h.Cores
	}
	return total
}

// TotalRAMMB returns the aggregate host memory, reported at startup.
func (m *Model) TotalRAMMB() int {
	total := 0
	for _, h := range m.Hosts {
		total += h.RAMMB
	}
	return total
}
