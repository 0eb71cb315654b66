package resource

import (
	"math"
	"testing"

	"github.com/cloudmirror/simulation-core/pkg/models"
)

func neutral() models.ScaleFactors {
	return models.ScaleFactors{CPU: 1.0, Response: 1.0, Load: 1.0}
}

func TestBuildNeutral(t *testing.T) {
	model, err := Build(neutral(), 1.0, 1.0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(model.Hosts) != 3 {
		t.Fatalf("Expected 3 hosts, got %d", len(model.Hosts))
	}
	if len(model.VMs) != 5 {
		t.Fatalf("Expected 5 VMs, got %d", len(model.VMs))
	}

	hostCores := []int{32, 20, 8}
	for i, expected := range hostCores {
		if model.Hosts[i].Cores != expected {
			t.Errorf("Host %s: expected %d cores, got %d", model.Hosts[i].Class, expected, model.Hosts[i].Cores)
		}
	}

	expectedVMs := []struct {
		role   string
		cores  int
		ramMB  int
		bwMbps int
		mips   float64
		diskMB int
	}{
		{"app-server", 4, 4096, 1200, 2200, 12000},
		{"api-server", 2, 2048, 1600, 2800, 20000},
		{"static-server", 2, 2048, 2000, 3400, 28000},
		{"database", 4, 4096, 2400, 4000, 36000},
		{"build-ci", 6, 8192, 2800, 4600, 44000},
	}

	for i, exp := range expectedVMs {
		vm := model.VMs[i]
		if vm.Role != exp.role {
			t.Errorf("VM %d: expected role %s, got %s", i, exp.role, vm.Role)
		}
		if vm.Cores != exp.cores {
			t.Errorf("VM %s: expected %d cores, got %d", exp.role, exp.cores, vm.Cores)
		}
		if vm.RAMMB != exp.ramMB {
			t.Errorf("VM %s: expected %d MB RAM, got %d", exp.role, exp.ramMB, vm.RAMMB)
		}
		if vm.BandwidthMbps != exp.bwMbps {
			t.Errorf("VM %s: expected %d Mbps, got %d", exp.role, exp.bwMbps, vm.BandwidthMbps)
		}
		if math.Abs(vm.MIPS-exp.mips) > 1e-9 {
			t.Errorf("VM %s: expected %f MIPS, got %f", exp.role, exp.mips, vm.MIPS)
		}
		if vm.DiskMB != exp.diskMB {
			t.Errorf("VM %s: expected %d MB disk, got %d", exp.role, exp.diskMB, vm.DiskMB)
		}
	}
}

func TestBuildFloors(t *testing.T) {
	// Minimum clamp values on every factor still produce a usable fleet.
	factors := models.ScaleFactors{CPU: 0.5, Response: 0.4, Load: 0.6}
	model, err := Build(factors, 1.0, 0.5)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, vm := range model.VMs {
		if vm.Cores < 1 {
			t.Errorf("VM %s: cores below floor: %d", vm.Role, vm.Cores)
		}
		if vm.RAMMB < 1024 {
			t.Errorf("VM %s: RAM below floor: %d", vm.Role, vm.RAMMB)
		}
	}

	// 2048 * 0.4 * 0.6 = 491.52, floored to 1024.
	if model.VMs[1].RAMMB != 1024 {
		t.Errorf("Expected api-server RAM floored to 1024, got %d", model.VMs[1].RAMMB)
	}
	// 2 * 0.5 = 1 core.
	if model.VMs[1].Cores != 1 {
		t.Errorf("Expected api-server at 1 core, got %d", model.VMs[1].Cores)
	}
}

func TestBuildCoreScalingTruncates(t *testing.T) {
	factors := models.ScaleFactors{CPU: 1.13, Response: 1.0, Load: 1.0}
	model, err := Build(factors, 1.0, 1.0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 4 * 1.13 = 4.52 truncates to 4; 6 * 1.13 = 6.78 truncates to 6.
	if model.VMs[0].Cores != 4 {
		t.Errorf("Expected app-server at 4 cores, got %d", model.VMs[0].Cores)
	}
	if model.VMs[4].Cores != 6 {
		t.Errorf("Expected build-ci at 6 cores, got %d", model.VMs[4].Cores)
	}
}

func TestBuildDatacenterScaling(t *testing.T) {
	tests := []struct {
		name          string
		dcScale       float64
		expectedCores []int
	}{
		{"scaled down to floor", 0.5, []int{16, 12, 8}},
		{"partial scale down", 0.7, []int{22, 14, 8}},
		{"scaled up", 2.0, []int{64, 40, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Build(neutral(), tt.dcScale, 1.0)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			for i, expected := range tt.expectedCores {
				if model.Hosts[i].Cores != expected {
					t.Errorf("Host %s: expected %d cores, got %d",
						model.Hosts[i].Class, expected, model.Hosts[i].Cores)
				}
			}
		})
	}
}

func TestBuildMIPSScaling(t *testing.T) {
	model, err := Build(neutral(), 1.0, 2.2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Host MIPS ratings are fixed; only VM rates scale.
	if model.Hosts[0].MIPSPerCore != 2800 {
		t.Errorf("Expected host MIPS unchanged at 2800, got %f", model.Hosts[0].MIPSPerCore)
	}
	if math.Abs(model.VMs[0].MIPS-2200*2.2) > 1e-9 {
		t.Errorf("Expected app-server MIPS %f, got %f", 2200*2.2, model.VMs[0].MIPS)
	}
}

func TestBuildCostCharacteristics(t *testing.T) {
	model, err := Build(neutral(), 1.0, 1.0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if model.Cost.PerSecond != 2.8 {
		t.Errorf("Expected per-second cost 2.8, got %f", model.Cost.PerSecond)
	}
	if model.Cost.PerMBRAM != 0.048 {
		t.Errorf("Expected per-MB RAM cost 0.048, got %f", model.Cost.PerMBRAM)
	}
	if model.Cost.PerMBStorage != 0.0009 {
		t.Errorf("Expected per-MB storage cost 0.0009, got %f", model.Cost.PerMBStorage)
	}
	if model.Cost.PerMbpsBw != 0 {
		t.Errorf("Expected bandwidth cost 0, got %f", model.Cost.PerMbpsBw)
	}
}

func TestTotals(t *testing.T) {
	model, err := Build(neutral(), 1.0, 1.0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := model.TotalCores(); got != 60 {
		t.Errorf("Expected 60 total cores, got %d", got)
	}
	if got := model.TotalRAMMB(); got != 114688 {
		t.Errorf("Expected 114688 MB total RAM, got %d", got)
	}
}
