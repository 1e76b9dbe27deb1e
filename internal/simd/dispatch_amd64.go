//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		currentLevel = LevelAVX512
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
	default:
		currentLevel = LevelScalar
	}
}
