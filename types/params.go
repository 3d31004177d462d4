package types

// AnalysisParams holds every constant of the cost model. Scenario sweeps
// (varying batch sizes, prices or confidence) are expressed as variations of
// this structure rather than code edits.
type AnalysisParams struct {
	ConfidenceX1000 uint64  `json:"confidence_x1000"  cbor:"0,keyasint,omitempty"`
	PMBatchSize     uint64  `json:"pm_batch_size"     cbor:"1,keyasint,omitempty"`
	TVBatchSize     uint64  `json:"tv_batch_size"     cbor:"2,keyasint,omitempty"`
	PMProofGas      uint64  `json:"pm_proof_gas"      cbor:"3,keyasint,omitempty"`
	TVProofGas      uint64  `json:"tv_proof_gas"      cbor:"4,keyasint,omitempty"`
	FullFixedGas    uint64  `json:"maci_fixed_gas"    cbor:"5,keyasint,omitempty"`
	RLAFixedGas     uint64  `json:"macirla_fixed_gas" cbor:"6,keyasint,omitempty"`
	GasPriceGwei    float64 `json:"gas_price_gwei"    cbor:"7,keyasint,omitempty"`
	ETHPriceUSD     float64 `json:"eth_price_usd"     cbor:"8,keyasint,omitempty"`
}

// DefaultAnalysisParams returns the parameters of the reference on-chain
// test setup.
func DefaultAnalysisParams() *AnalysisParams {
	return &AnalysisParams{
		ConfidenceX1000: DefaultConfidenceX1000,
		PMBatchSize:     DefaultPMBatchSize,
		TVBatchSize:     DefaultTVBatchSize,
		PMProofGas:      DefaultPMProofGas,
		TVProofGas:      DefaultTVProofGas,
		FullFixedGas:    DefaultFullFixedGas,
		RLAFixedGas:     DefaultRLAFixedGas,
		GasPriceGwei:    DefaultGasPriceGwei,
		ETHPriceUSD:     DefaultETHPriceUSD,
	}
}
