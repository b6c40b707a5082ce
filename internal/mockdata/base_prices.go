package mockdata

// DefaultBasePrice seeds the random walk for symbols missing from the table.
const DefaultBasePrice = 100.0

var basePrices = map[string]float64{
	"ES":  5650.00,
	"NQ":  19800.00,
	"YM":  42200.00,
	"RTY": 2210.00,
	"CL":  78.50,
	"NG":  2.95,
	"GC":  2650.00,
	"SI":  31.20,
	"HG":  4.35,
	"ZN":  110.50,
	"ZB":  118.25,
	"6E":  1.0850,
}

// BasePrices returns a fresh copy of the generator's starting-price table.
func BasePrices() map[string]float64 {
	out := make(map[string]float64, len(basePrices))
	for k, v := range basePrices {
		out[k] = v
	}
	return out
}
