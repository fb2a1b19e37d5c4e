package models

import "math/big"

// TokenQuote is the read-only description of the crowdfunding token as seen
// by the client: symbol, decimals, crowdsale rate and remaining supply.
// All conversion math goes through the big-integer multiplier; nothing here
// touches floating point.
type TokenQuote struct {
	// Symbol is the token's ticker, e.g. "CFT".
	Symbol string

	// Decimals is the token's decimal count as reported by the contract.
	Decimals uint8

	// Multiplier is 10^Decimals, the smallest-unit scaling factor.
	Multiplier *big.Int

	// Rate is the crowdsale rate: token smallest-units bought per wei.
	Rate *big.Int

	// ForSale is the crowdsale contract's remaining token balance in
	// smallest units.
	ForSale *big.Int
}

// NewTokenQuote computes the multiplier for the given decimals.
func NewTokenQuote(symbol string, decimals uint8) TokenQuote {
	mult := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return TokenQuote{Symbol: symbol, Decimals: decimals, Multiplier: mult}
}

// ToUnits scales a whole-token amount into smallest units. A quote without a
// multiplier scales by 1.
func (q TokenQuote) ToUnits(whole int64) *big.Int {
	v := big.NewInt(whole)
	if q.Multiplier == nil {
		return v
	}
	return v.Mul(v, q.Multiplier)
}

// Format renders a smallest-unit amount as a whole-token decimal string,
// trimming trailing zeros ("1500000" with 6 decimals -> "1.5").
func (q TokenQuote) Format(units *big.Int) string {
	if units == nil {
		return "0"
	}
	if q.Multiplier == nil || q.Multiplier.Sign() == 0 {
		return units.String()
	}
	r := new(big.Rat).SetFrac(units, q.Multiplier)
	s := r.FloatString(int(q.Decimals))
	return trimDecimal(s)
}

// WeiPrice returns the wei cost of buying the given whole-token amount at
// the crowdsale rate: amount scaled to units, divided by rate.
// A zero or missing rate yields 0.
func (q TokenQuote) WeiPrice(whole int64) *big.Int {
	if q.Rate == nil || q.Rate.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Quo(q.ToUnits(whole), q.Rate)
}

func trimDecimal(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}
