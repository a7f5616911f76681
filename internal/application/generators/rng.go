package generators

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Component tags for random-stream derivation. Each generator owns a
// stream derived from the master seed plus its tag, so components draw
// independently and overall output stays reproducible regardless of
// execution order.
const (
	streamPatients    = "patients"
	streamEncounters  = "encounters"
	streamLabResults  = "lab_results"
	streamImaging     = "imaging_studies"
	streamMedications = "medications"
	streamDimensions  = "dimensions"
)

func streamSeed(master int64, tag string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(tag))
	return h.Sum64() ^ uint64(master)
}

// newStream builds the random source and faker owned exclusively by
// one generator component.
func newStream(master int64, tag string) (*rand.Rand, *gofakeit.Faker) {
	seed := streamSeed(master, tag)
	return rand.New(rand.NewPCG(seed, seed<<1|1)), gofakeit.New(seed)
}

// pick returns a uniformly sampled element of pool.
func pick[T any](r *rand.Rand, pool []T) T {
	return pool[r.IntN(len(pool))]
}

// sampleWithoutReplacement returns n distinct elements of pool; n is
// capped at the pool size.
func sampleWithoutReplacement(r *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, idx := range r.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}
