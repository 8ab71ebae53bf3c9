package generate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/npillmayer/glot/core"
)

// sampler selects the next token from a logits vector. Sampling is seeded
// and therefore deterministic for a given seed.
type sampler struct {
	rng         *rand.Rand
	temperature float64 // <= 0 selects arg-max
	topP        float64 // nucleus threshold, active only in (0,1)
}

func newSampler(seed uint64, temperature float64, topP float64) *sampler {
	if topP <= 0 || topP >= 1 {
		topP = 0 // disabled
	}
	return &sampler{
		rng:         rand.New(rand.NewSource(int64(seed))),
		temperature: temperature,
		topP:        topP,
	}
}

// Sample returns the index of the next token.
func (s *sampler) Sample(logits []float32) (int, error) {
	if len(logits) == 0 {
		return 0, core.Error(core.ESAMPLE, "empty logits vector")
	}
	if s.temperature <= 0 {
		return argmax(logits), nil
	}
	probs := softmax(logits, s.temperature)
	if s.topP > 0 {
		return s.sampleNucleus(probs), nil
	}
	return s.sampleMultinomial(probs), nil
}

func argmax(logits []float32) int {
	best := 0
	for i, l := range logits {
		if l > logits[best] {
			best = i
		}
	}
	return best
}

// softmax computes temperature-scaled probabilities. Shifted by the
// maximum logit for numerical stability.
func softmax(logits []float32, temperature float64) []float64 {
	max := logits[argmax(logits)]
	probs := make([]float64, len(logits))
	var total float64
	for i, l := range logits {
		probs[i] = math.Exp(float64(l-max) / temperature)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}

// sampleMultinomial draws from the full distribution.
func (s *sampler) sampleMultinomial(probs []float64) int {
	r := s.rng.Float64()
	var cum float64
	for i, p := range probs {
		cum += p
		if r < cum {
			return i
		}
	}
	return len(probs) - 1
}

// sampleNucleus restricts sampling to the smallest set of candidates whose
// cumulative probability mass reaches topP, then draws from that set.
func (s *sampler) sampleNucleus(probs []float64) int {
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return probs[idx[a]] > probs[idx[b]]
	})
	var mass float64
	cut := 0
	for ; cut < len(idx); cut++ {
		mass += probs[idx[cut]]
		if mass >= s.topP {
			cut++
			break
		}
	}
	nucleus := idx[:cut]
	r := s.rng.Float64() * mass
	var cum float64
	for _, i := range nucleus {
		cum += probs[i]
		if r < cum {
			return i
		}
	}
	return nucleus[len(nucleus)-1]
}

// applyRepeatPenalty rescales logits of tokens that appeared among the
// recent output tokens, discouraging repetition: positive logits are
// divided by the penalty, negative ones multiplied.
func applyRepeatPenalty(logits []float32, penalty float32, recent []int) []float32 {
	if penalty == 1.0 || len(recent) == 0 {
		return logits
	}
	seen := make(map[int]bool, len(recent))
	for _, id := range recent {
		seen[id] = true
	}
	out := make([]float32, len(logits))
	copy(out, logits)
	for id := range seen {
		if id < 0 || id >= len(out) {
			continue
		}
		if out[id] >= 0 {
			out[id] /= penalty
		} else {
			out[id] *= penalty
		}
	}
	return out
}
