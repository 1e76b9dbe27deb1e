package types

// Timestamp is an unsigned 64-bit scalar, typically microseconds since
// the epoch. The engine treats it as an opaque ordered integer; no
// component of the core parses timestamp literals (TPC-H's core queries
// use Date, not Timestamp, for shipdate/orderdate filters).
type Timestamp uint64

// Hash mixes the timestamp's bit pattern through the shared xorshift hash.
func (v Timestamp) Hash() uint64 {
	return MixHash64(uint64(v))
}
