// Package rla implements the MaciRLA risk-limiting-audit sample size
// arithmetic. The results must match the deployed on-chain implementation
// bit for bit, so every operation is unsigned integer math with explicit
// floor and ceiling divisions. The sample size formula is a simplified
// closed-form ratio of the hypergeometric confidence bound, reproduced here
// as-is rather than replaced with an exact test.
package rla

import "github.com/vocdoni/macirla-analysis/types"

// CeilDiv returns ceil(a/b) for non-negative integers. b must be positive.
func CeilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// CalcSampleCounts computes the number of batches that must be sampled from
// each proof batch structure to reach the confidence target. Rules:
//   - no votes: nothing to verify, zero samples for both structures;
//   - exact tie: a tie cannot be statistically sampled, both structures
//     require full verification;
//   - otherwise each structure is sized independently from the shared
//     votes-to-flip count, leaving at least one batch unsampled whenever
//     more than one batch exists.
func CalcSampleCounts(margin, totalVotes uint64, pm, tv types.BatchConfig, confidenceX1000 uint64) types.SampleCounts {
	if totalVotes == 0 {
		return types.SampleCounts{}
	}
	if margin == 0 {
		return types.SampleCounts{
			PMSamples: pm.BatchCount,
			TVSamples: tv.BatchCount,
		}
	}
	// Minimum number of vote flips that would overturn the outcome. Floor
	// division: flipping exactly half of the margin yields a tie, one more
	// flips the result.
	votesToFlip := margin/2 + 1
	return types.SampleCounts{
		PMSamples: sampleSize(votesToFlip, pm, confidenceX1000),
		TVSamples: sampleSize(votesToFlip, tv, confidenceX1000),
	}
}

// sampleSize applies the RLA formula to a single batch structure.
func sampleSize(votesToFlip uint64, b types.BatchConfig, confidenceX1000 uint64) uint64 {
	if b.BatchCount == 0 {
		return 0
	}
	maxSamples := b.BatchCount
	if b.BatchCount > 1 {
		maxSamples = b.BatchCount - 1
	}
	// Minimum number of corrupted batches able to flip enough votes.
	corrupt := CeilDiv(votesToFlip, b.BatchSize)
	if corrupt > b.BatchCount {
		corrupt = b.BatchCount
	}
	samples := CeilDiv(confidenceX1000*b.BatchCount, corrupt*1000)
	if samples > maxSamples {
		samples = maxSamples
	}
	return samples
}
