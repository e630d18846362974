package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownServiceType(t *testing.T) {
	for _, serviceType := range AllServiceTypes {
		assert.True(t, IsKnownServiceType(serviceType))
	}
	assert.False(t, IsKnownServiceType("jacuzzi"))
	assert.False(t, IsKnownServiceType(""))
}

func TestIsHeadcountService(t *testing.T) {
	assert.True(t, IsHeadcountService(ServicePileta))
	assert.False(t, IsHeadcountService(ServiceCarpa))
	assert.False(t, IsHeadcountService(ServiceSombrilla))
	assert.False(t, IsHeadcountService(ServiceParking))
}
