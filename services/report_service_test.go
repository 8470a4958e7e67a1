package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kon1973/nexu-webshop-sub001/models"
)

func TestFillDaysZeroFillsWeek(t *testing.T) {
	to := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)

	// Keys at UTC midnight, the way the UTC-pinned day truncation
	// returns them.
	byDay := map[time.Time]models.DailySales{
		from:                  {Day: from, OrderCount: 3, Revenue: 410000},
		from.AddDate(0, 0, 4): {Day: from.AddDate(0, 0, 4), OrderCount: 1, Revenue: 49990},
	}

	days := fillDays(byDay, from, to)
	require.Len(t, days, 7)

	assert.Equal(t, 3, days[0].OrderCount)
	assert.Equal(t, 410000.0, days[0].Revenue)
	assert.Equal(t, 1, days[4].OrderCount)

	for i, d := range days {
		assert.Equal(t, from.AddDate(0, 0, i), d.Day)
		if i != 0 && i != 4 {
			assert.Zero(t, d.OrderCount)
			assert.Zero(t, d.Revenue)
		}
	}
}

func TestFillDaysEmptyWindow(t *testing.T) {
	to := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)

	days := fillDays(nil, from, to)
	require.Len(t, days, 7)
	for _, d := range days {
		assert.Zero(t, d.OrderCount)
		assert.Zero(t, d.Revenue)
	}
}
