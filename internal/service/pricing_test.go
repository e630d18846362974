package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePoolPricing(t *testing.T) {
	daily, total := DerivePoolPricing(2, 1, 10, 5, 3)
	assert.Equal(t, 25.0, daily)
	assert.Equal(t, 75.0, total)
}

func TestDerivePoolPricingCoercesNegativesToZero(t *testing.T) {
	daily, total := DerivePoolPricing(-2, 1, 10, -5, 3)
	assert.Equal(t, 0.0, daily)
	assert.Equal(t, 0.0, total)

	daily, total = DerivePoolPricing(2, -1, 10, 5, 3)
	assert.Equal(t, 20.0, daily)
	assert.Equal(t, 60.0, total)
}

func TestDerivePoolPricingAllZeroIsValid(t *testing.T) {
	daily, total := DerivePoolPricing(0, 0, 0, 0, 5)
	assert.Equal(t, 0.0, daily)
	assert.Equal(t, 0.0, total)
}

func TestResolveExclusivePricingRecomputesTotal(t *testing.T) {
	dailyPrice := 20.0
	daily, total := resolveExclusivePricing(&dailyPrice, nil, 5)
	assert.Equal(t, 20.0, *daily)
	assert.Equal(t, 100.0, *total)
}

func TestResolveExclusivePricingKeepsSuppliedTotal(t *testing.T) {
	dailyPrice, totalPrice := 20.0, 90.0
	daily, total := resolveExclusivePricing(&dailyPrice, &totalPrice, 5)
	assert.Equal(t, 20.0, *daily)
	assert.Equal(t, 90.0, *total)
}

func TestResolveExclusivePricingNilStaysNil(t *testing.T) {
	daily, total := resolveExclusivePricing(nil, nil, 5)
	assert.Nil(t, daily)
	assert.Nil(t, total)
}
