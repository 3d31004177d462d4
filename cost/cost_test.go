package cost

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGasToUSD(t *testing.T) {
	c := qt.New(t)

	// 1e9 gas at 30 gwei is 30 ETH; at 3000 USD/ETH that is 90000 USD.
	c.Assert(GasToUSD(1_000_000_000, 30, 3000), qt.Equals, 90_000.0)

	c.Assert(GasToUSD(0, 30, 3000), qt.Equals, 0.0)
	c.Assert(GasToUSD(21_000, 0, 3000), qt.Equals, 0.0)
	c.Assert(GasToUSD(21_000, 30, 0), qt.Equals, 0.0)
}
