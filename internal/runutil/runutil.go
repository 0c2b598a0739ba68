package runutil

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// PhysicalCores returns the number of physical CPU cores. When the CPU
// cannot be identified it falls back to runtime.NumCPU (logical CPUs).
func PhysicalCores() int {
	if n := cpuid.CPU.PhysicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// EffectiveThreads resolves the --threads value against the machine.
// requested <= 0 or requested above the physical core count means
// "use all physical cores".
func EffectiveThreads(requested int) int {
	return clampThreads(requested, PhysicalCores())
}

func clampThreads(requested, cores int) int {
	if cores < 1 {
		cores = 1
	}
	if requested <= 0 || requested > cores {
		return cores
	}
	return requested
}
