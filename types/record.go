package types

type GenericMetadata map[string]string

// BatchConfig describes one proof batch structure. BatchCount is derived
// upstream as the ceiling of the item count divided by BatchSize; the
// tally-verification structure adds one padding unit (the extra state tree
// leaf) before dividing.
type BatchConfig struct {
	BatchSize  uint64 `json:"batch_size"  cbor:"0,keyasint,omitempty"`
	BatchCount uint64 `json:"batch_count" cbor:"1,keyasint,omitempty"`
}

// DecisionRecord is one decided dispute as supplied by a record loader:
// a voter count and the share of voters that backed the winning option.
// Meta carries optional loader fields (appeal counts and the like) that the
// analysis passes through untouched.
type DecisionRecord struct {
	ID            string          `json:"id"             cbor:"0,keyasint,omitempty"`
	Voters        uint64          `json:"voters"         cbor:"1,keyasint,omitempty"`
	ConsensusRate float64         `json:"consensus_rate" cbor:"2,keyasint,omitempty"`
	Meta          GenericMetadata `json:"meta,omitempty" cbor:"3,keyasint,omitempty"`
}

// SampleCounts is the number of batches that must be sampled and
// proof-checked on-chain for each proof type. Always within
// [0, batch count] for the corresponding structure.
type SampleCounts struct {
	PMSamples uint64 `json:"pm_samples" cbor:"0,keyasint,omitempty"`
	TVSamples uint64 `json:"tv_samples" cbor:"1,keyasint,omitempty"`
}
