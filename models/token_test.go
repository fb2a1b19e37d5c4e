package models

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenQuote_ToUnits(t *testing.T) {
	tests := []struct {
		name     string
		decimals uint8
		whole    int64
		want     *big.Int
	}{
		{"zero decimals", 0, 5, big.NewInt(5)},
		{"three decimals", 3, 5, big.NewInt(5000)},
		{"eighteen decimals", 18, 2, new(big.Int).Mul(big.NewInt(2), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewTokenQuote("CFT", tt.decimals)
			assert.Equal(t, tt.want, q.ToUnits(tt.whole))
		})
	}
}

func TestTokenQuote_ToUnits_NoMultiplier(t *testing.T) {
	var q TokenQuote
	assert.Equal(t, big.NewInt(7), q.ToUnits(7))
}

func TestTokenQuote_Format(t *testing.T) {
	tests := []struct {
		name     string
		decimals uint8
		units    *big.Int
		want     string
	}{
		{"whole", 3, big.NewInt(5000), "5"},
		{"fraction trimmed", 6, big.NewInt(1500000), "1.5"},
		{"sub unit", 3, big.NewInt(42), "0.042"},
		{"nil is zero", 3, nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewTokenQuote("CFT", tt.decimals)
			assert.Equal(t, tt.want, q.Format(tt.units))
		})
	}
}

func TestTokenQuote_Format_NoMultiplier(t *testing.T) {
	var q TokenQuote
	assert.Equal(t, "123", q.Format(big.NewInt(123)))
}

func TestTokenQuote_WeiPrice(t *testing.T) {
	q := NewTokenQuote("CFT", 3)
	q.Rate = big.NewInt(2)

	// 5 whole tokens = 5000 units, at 2 units per wei = 2500 wei
	assert.Equal(t, big.NewInt(2500), q.WeiPrice(5))
}

func TestTokenQuote_WeiPrice_MissingRate(t *testing.T) {
	q := NewTokenQuote("CFT", 3)
	assert.Zero(t, q.WeiPrice(5).Sign())
}
