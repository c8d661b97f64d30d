package curve

import (
	"runtime"
	"sync"

	"kurv/internal/cpu"
)

// caps carries the CPU probe answers the selection policy consumes.
type caps struct {
	bmi2adx bool // x86-64: BMI2 and ADX instruction sets
	wideMul bool // arm64: high-throughput wide multiplier
}

func hostCaps() caps {
	return caps{
		bmi2adx: cpu.HasBMI2ADX(),
		wideMul: cpu.HasWideMultiplier(),
	}
}

// capable reports whether an accelerated backend may be used at all:
// a 64-bit x86 or Arm core, a Linux or Apple OS, and assembly not disabled
// by the purego build tag.
func capable(arch, goos string, asm bool) bool {
	if !asm {
		return false
	}
	if arch != "amd64" && arch != "arm64" {
		return false
	}
	switch goos {
	case "linux", "darwin", "ios":
		return true
	}
	return false
}

// altCapable reports whether the alt variant is usable. On amd64 it always
// is. On arm64 it is restricted to cores with wide multipliers, where it
// outperforms the no-alt variant.
func altCapable(arch string, c caps) bool {
	switch arch {
	case "amd64":
		return true
	case "arm64":
		return c.wideMul
	}
	return false
}

// noAltCapable reports whether the no-alt variant is usable. On amd64 it
// needs BMI2 and ADX; on arm64 it runs everywhere.
func noAltCapable(arch string, c caps) bool {
	switch arch {
	case "amd64":
		return c.bmi2adx
	case "arm64":
		return true
	}
	return false
}

// pick applies the measured-performance policy on a capable host:
// amd64 prefers no-alt (BMI2+ADX kernels beat the portable ones whenever
// present), arm64 prefers alt (it only matches wide-multiplier cores, where
// it wins). Falling through both predicates means the build or the feature
// detection is broken, so there is nothing sensible to fall back to.
func pick(arch string, c caps) Backend {
	switch arch {
	case "amd64":
		if noAltCapable(arch, c) {
			return noAltBackend{}
		}
		if altCapable(arch, c) {
			return altBackend{}
		}
	case "arm64":
		if altCapable(arch, c) {
			return altBackend{}
		}
		if noAltCapable(arch, c) {
			return noAltBackend{}
		}
	}
	panic("curve: no backend variant usable on a capable host")
}

var active = sync.OnceValue(func() Backend {
	if !capable(runtime.GOARCH, runtime.GOOS, asmEnabled) {
		return genericBackend{}
	}
	return pick(runtime.GOARCH, hostCaps())
})

// Active returns the backend selected for this host. The decision is made
// once; the inputs cannot change while the process runs.
func Active() Backend { return active() }

// Accelerated reports whether Active is one of the accelerated variants.
func Accelerated() bool {
	return capable(runtime.GOARCH, runtime.GOOS, asmEnabled)
}
