package types

const (
	// DefaultConfidenceX1000 encodes the target detection probability scaled
	// by 1000. 2996 (2.996) corresponds to a 95% probability of detecting a
	// corrupted batch set via random sampling.
	DefaultConfidenceX1000 = 2996
	// DefaultPMBatchSize is the number of processing-message proofs folded
	// into one provable batch: 5^msgTreeSubDepth with subDepth=1.
	DefaultPMBatchSize = 5
	// DefaultTVBatchSize is the number of tally-verification proofs folded
	// into one provable batch: 2^intStateTreeDepth with depth=1.
	DefaultTVBatchSize = 2
	// DefaultPMProofGas is the measured on-chain gas cost of verifying one
	// processing-message batch proof.
	DefaultPMProofGas = 474_492
	// DefaultTVProofGas is the measured on-chain gas cost of verifying one
	// tally-verification batch proof.
	DefaultTVProofGas = 402_099
	// DefaultFullFixedGas is the fixed overhead of the full MACI scheme:
	// commit, reveal and state transitions.
	DefaultFullFixedGas = 7_893_819
	// DefaultRLAFixedGas is the fixed overhead of the MaciRLA scheme:
	// commit, reveal and finalize.
	DefaultRLAFixedGas = 7_000_000
	// DefaultGasPriceGwei is the assumed gas price for USD conversions.
	DefaultGasPriceGwei = 30
	// DefaultETHPriceUSD is the assumed ETH price for USD conversions.
	DefaultETHPriceUSD = 3_000
)
