package query

import (
	"math/rand"
	"testing"

	"github.com/ville03/programming-for-performance/set"
	"github.com/ville03/programming-for-performance/set/bitvec"
	"github.com/ville03/programming-for-performance/set/hashset"
	"github.com/ville03/programming-for-performance/set/roaringset"
	"github.com/ville03/programming-for-performance/set/sortedvec"
	"github.com/ville03/programming-for-performance/set/tree"
)

const benchLimit = 1 << 20

func benchValues(n int) []uint32 {
	rng := rand.New(rand.NewSource(1))
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = uint32(rng.Intn(benchLimit + 1))
	}
	return vals
}

// BenchmarkBuildThenQuery measures the separated workload the harness is
// built to compare: insert a batch, then answer a batch of queries.
func BenchmarkBuildThenQuery(b *testing.B) {
	const n = 10_000

	inserts := benchValues(n)
	queries := benchValues(n)

	impls := []struct {
		name string
		mk   func() set.Set
	}{
		{"Tree", func() set.Set { return tree.New() }},
		{"SortedVec", func() set.Set { return sortedvec.New() }},
		{"SortedVecEager", func() set.Set {
			return sortedvec.New(func(o *sortedvec.Options) { o.Eager = true })
		}},
		{"BitVec", func() set.Set {
			// benchLimit is far below bitvec.MaxLimit.
			s, _ := bitvec.New(benchLimit)
			return s
		}},
		{"HashSet", func() set.Set { return hashset.New() }},
		{"RoaringSet", func() set.Set { return roaringset.New() }},
	}

	for _, impl := range impls {
		mk := impl.mk
		b.Run(impl.name, func(b *testing.B) {
			for range b.N {
				s := mk()
				for _, v := range inserts {
					if err := s.Insert(v); err != nil {
						b.Fatal(err)
					}
				}
				for _, v := range queries {
					if _, err := s.Contains(v); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
