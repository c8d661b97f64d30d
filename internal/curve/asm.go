//go:build !purego

package curve

const asmEnabled = true
