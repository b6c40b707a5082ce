package util

import "github.com/shopspring/decimal"

// Round2 rounds x half away from zero to two decimal places.
// Going through decimal avoids the binary drift of math.Round(x*100)/100
// on values like 1.005.
func Round2(x float64) float64 {
	return RoundN(x, 2)
}

// RoundN rounds x to n decimal places.
func RoundN(x float64, n int32) float64 {
	return decimal.NewFromFloat(x).Round(n).InexactFloat64()
}
