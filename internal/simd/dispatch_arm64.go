//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
	} else {
		currentLevel = LevelScalar
	}
}
