package simd

// Level names the SIMD width the runtime has selected for vectorized
// primitives. Scalar is always a valid fallback.
type Level int

const (
	LevelScalar Level = iota
	LevelAVX2
	LevelAVX512
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "scalar"
	}
}

var currentLevel = LevelScalar

// CurrentLevel reports the SIMD level detected for this process. Kernels
// here are portable Go regardless of level; Config uses this only to
// decide whether "useSimdX" may select the width-8 kernel at all.
func CurrentLevel() Level { return currentLevel }

// HasWideVector reports whether the detected level supports the width-8
// gather/compare/compress kernels the vectorized primitives need.
func HasWideVector() bool {
	return currentLevel == LevelAVX2 || currentLevel == LevelAVX512 || currentLevel == LevelNEON
}
