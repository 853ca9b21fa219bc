package gmwm

// Stochastic loops never share a random stream: draw i of stream s derives
// its own sub-seed from the top-level seed, so per-draw results are
// deterministic regardless of worker scheduling.
const (
	streamBootstrap uint64 = 1
	streamNull      uint64 = 2
)

// subSeed mixes (seed, stream, draw index) through a splitmix64 finalizer.
func subSeed(seed, stream uint64, i int) uint64 {
	z := seed + stream*0x9e3779b97f4a7c15 + (uint64(i)+1)*0xbf58476d1ce4e5b9
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
