// Package cost converts gas amounts into currency.
package cost

import "github.com/ethereum/go-ethereum/params"

// GasToUSD converts a gas amount to US dollars given a gas price in gwei and
// an ETH price in USD. The result keeps full precision; rounding belongs to
// the presentation layer.
func GasToUSD(gas uint64, gasPriceGwei, ethPriceUSD float64) float64 {
	eth := float64(gas) * gasPriceGwei * params.GWei / params.Ether
	return eth * ethPriceUSD
}
