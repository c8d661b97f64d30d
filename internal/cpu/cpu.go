// Package cpu probes the host processor for the characteristics the curve
// backend selector cares about. All probes are memoized; the answers are
// immutable properties of the host.
package cpu

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// HasBMI2ADX reports whether the processor supports both the BMI2 and ADX
// instruction set extensions. Always false off x86-64.
var HasBMI2ADX = sync.OnceValue(func() bool {
	return cpuid.CPU.Supports(cpuid.BMI2, cpuid.ADX)
})

// HasWideMultiplier reports whether an arm64 core has a high-throughput
// "wide" multiplier. This is a heuristic over known core families, not an
// architectural feature bit: Apple silicon and Arm Neoverse V-class cores
// qualify. Always false off arm64.
var HasWideMultiplier = sync.OnceValue(wideMultiplier)

func wideMultiplier() bool {
	if runtime.GOARCH != "arm64" {
		return false
	}
	switch runtime.GOOS {
	case "darwin", "ios":
		// The only arm64 cores Apple ships are their own.
		return true
	case "linux":
		info, err := os.ReadFile("/proc/cpuinfo")
		if err != nil {
			return false
		}
		return wideMultiplierCPUInfo(string(info))
	}
	return false
}

// wideMultiplierCPUInfo extracts the MIDR implementer and part fields from
// /proc/cpuinfo output and matches them against the known-core list.
func wideMultiplierCPUInfo(info string) bool {
	implementer, part := int64(-1), int64(-1)
	for _, line := range strings.Split(info, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		switch strings.TrimSpace(k) {
		case "CPU implementer":
			if n, err := strconv.ParseInt(v, 0, 64); err == nil {
				implementer = n
			}
		case "CPU part":
			if n, err := strconv.ParseInt(v, 0, 64); err == nil {
				part = n
			}
		}
	}
	return wideMultiplierMIDR(implementer, part)
}

func wideMultiplierMIDR(implementer, part int64) bool {
	switch implementer {
	case 0x61: // Apple
		return true
	case 0x41: // Arm: Neoverse V1 and V2
		return part == 0xd40 || part == 0xd4f
	}
	return false
}
