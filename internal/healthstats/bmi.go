// Package healthstats turns raw health measurements into the values and
// strings shown on the dashboard.
package healthstats

import (
	"math"
	"math/big"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// CalculateBMI returns weight / height(m)^2 rounded to one decimal.
// heightCm must be positive.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return RoundFixed(weightKg/(heightM*heightM), 1)
}

// GetBMICategory maps a BMI value to its band. Each band includes its lower bound.
func GetBMICategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// Round scales v by 10^decimals, rounds half away from zero and scales back.
// The scaling can turn a value just below a tie into an exact tie.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// RoundFixed rounds the exact binary value of v to the given number of decimals,
// exact ties going away from zero. 18.449999999999999 stays 18.4.
func RoundFixed(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || decimals < 0 {
		return v
	}
	neg := v < 0
	if neg {
		v = -v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	out, _ := new(big.Rat).SetFrac(n, scale).Float64()
	if neg {
		out = -out
	}
	return out
}
