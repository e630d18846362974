package service

import (
	"testing"

	"balneario/internal/db"
	"balneario/internal/entities"
	apperrors "balneario/internal/errors"
	"balneario/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGroupRequest(t *testing.T) {
	clientID := 42

	cases := []struct {
		name     string
		req      entities.ReservationGroupRequest
		expected error
	}{
		{"unknown service", entities.ReservationGroupRequest{ServiceType: "jacuzzi", ResourceNumber: 1}, apperrors.ErrInvalidService},
		{"carpa without resource", entities.ReservationGroupRequest{ServiceType: utils.ServiceCarpa}, apperrors.ErrInvalidResource},
		{"carpa negative resource", entities.ReservationGroupRequest{ServiceType: utils.ServiceCarpa, ResourceNumber: -3}, apperrors.ErrInvalidResource},
		{"carpa valid", entities.ReservationGroupRequest{ServiceType: utils.ServiceCarpa, ResourceNumber: 12}, nil},
		{"pileta without client", entities.ReservationGroupRequest{ServiceType: utils.ServicePileta}, apperrors.ErrClientRequired},
		{"pileta with client", entities.ReservationGroupRequest{ServiceType: utils.ServicePileta, ClientID: &clientID}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateGroupRequest(&tc.req)
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}

func TestParseGroupRangeNormalizesSwappedBounds(t *testing.T) {
	rng, err := parseGroupRange("2024-01-10", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 5), rng.Start)
	assert.Equal(t, day(2024, 1, 10), rng.End)
}

func TestParseGroupRangeRejectsMalformedDates(t *testing.T) {
	_, err := parseGroupRange("2024-01-10", "10/01/2024")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
	_, err = parseGroupRange("", "2024-01-10")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestApplyPricingDerivesPoolPrices(t *testing.T) {
	group := &db.ReservationGroup{ServiceType: utils.ServicePileta}
	req := &entities.ReservationGroupRequest{
		ServiceType:          utils.ServicePileta,
		PoolAdultsCount:      2,
		PoolChildrenCount:    1,
		PoolAdultPricePerDay: 10,
		PoolChildPricePerDay: 5,
	}

	applyPricing(group, req, 3)

	require.NotNil(t, group.DailyPrice)
	require.NotNil(t, group.TotalPrice)
	assert.Equal(t, 25.0, *group.DailyPrice)
	assert.Equal(t, 75.0, *group.TotalPrice)
}

func TestApplyPricingCoercesNegativePoolInputs(t *testing.T) {
	group := &db.ReservationGroup{ServiceType: utils.ServicePileta}
	req := &entities.ReservationGroupRequest{
		ServiceType:          utils.ServicePileta,
		PoolAdultsCount:      -2,
		PoolChildrenCount:    1,
		PoolAdultPricePerDay: 10,
		PoolChildPricePerDay: -5,
	}

	applyPricing(group, req, 3)

	assert.Equal(t, 0, group.PoolAdultsCount)
	assert.Equal(t, 1, group.PoolChildrenCount)
	assert.Equal(t, 0.0, *group.DailyPrice)
	assert.Equal(t, 0.0, *group.TotalPrice)
}

func TestApplyPricingRecomputesExclusiveTotalForNewDuration(t *testing.T) {
	// A booking priced at 20 per day, extended from 3 to 5 days without
	// the caller resupplying the total.
	dailyPrice := 20.0
	group := &db.ReservationGroup{ServiceType: utils.ServiceCarpa}
	req := &entities.ReservationGroupRequest{
		ServiceType: utils.ServiceCarpa,
		DailyPrice:  &dailyPrice,
	}

	applyPricing(group, req, 5)

	require.NotNil(t, group.TotalPrice)
	assert.Equal(t, 100.0, *group.TotalPrice)
}

func TestApplyPricingExclusiveAcceptsSuppliedPrices(t *testing.T) {
	dailyPrice, totalPrice := 20.0, 50.0
	group := &db.ReservationGroup{ServiceType: utils.ServiceSombrilla}
	req := &entities.ReservationGroupRequest{
		ServiceType: utils.ServiceSombrilla,
		DailyPrice:  &dailyPrice,
		TotalPrice:  &totalPrice,
	}

	applyPricing(group, req, 3)

	assert.Equal(t, 50.0, *group.TotalPrice)
}
