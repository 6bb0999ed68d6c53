package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPickupDateWindow(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, loc)

	day := func(offset int) time.Time {
		return time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	assert.Error(t, checkPickupDate(day(0), now))
	assert.Error(t, checkPickupDate(day(1), now))
	assert.NoError(t, checkPickupDate(day(2), now))
	assert.NoError(t, checkPickupDate(day(30), now))
	assert.Error(t, checkPickupDate(day(31), now))
}

func TestCheckPickupDateCountsLocalDays(t *testing.T) {
	// Just after local midnight in a UTC+2 zone it is still the previous
	// day in UTC; the lead window must count from the local day.
	loc, err := time.LoadLocation("Africa/Johannesburg")
	require.NoError(t, err)
	now := time.Date(2025, 6, 11, 0, 30, 0, 0, loc) // 2025-06-10 22:30 UTC

	// Two local days out: allowed.
	pickup, err := time.Parse("2006-01-02", "2025-06-13")
	require.NoError(t, err)
	assert.NoError(t, checkPickupDate(pickup, now))

	// One local day out: rejected even though UTC still reads June 10.
	pickup, err = time.Parse("2006-01-02", "2025-06-12")
	require.NoError(t, err)
	assert.Error(t, checkPickupDate(pickup, now))
}

func TestShopLocationFallsBackToLocal(t *testing.T) {
	t.Setenv("SHOP_TIMEZONE", "Not/AZone")
	assert.Equal(t, time.Local, shopLocation())

	t.Setenv("SHOP_TIMEZONE", "Africa/Johannesburg")
	assert.Equal(t, "Africa/Johannesburg", shopLocation().String())
}
