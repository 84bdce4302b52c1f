//go:build unit

package reservation_test

import (
	"testing"

	"sitlink/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestFeeSchedule_Compute(t *testing.T) {
	schedule := reservation.NewFeeSchedule(200, 15)

	t.Run("hourly rate 20.00", func(t *testing.T) {
		got := schedule.Compute(reservation.NewMoney(2000))

		assert.Equal(t, int64(2000), got.Deposit.Cents())
		assert.Equal(t, int64(200), got.ServiceFee.Cents())
		assert.Equal(t, int64(2200), got.TotalDeposit.Cents())
		assert.Equal(t, int64(300), got.PlatformFee.Cents())
		assert.Equal(t, int64(1700), got.SitterPayout.Cents())
	})

	t.Run("arithmetic invariants hold for varied rates", func(t *testing.T) {
		rates := []int64{1, 99, 100, 1550, 2000, 3725, 10000, 999999}
		for _, rate := range rates {
			got := schedule.Compute(reservation.NewMoney(rate))

			assert.Equal(t, got.Deposit.Add(got.ServiceFee).Cents(), got.TotalDeposit.Cents(),
				"total_deposit == deposit + service_fee for rate %d", rate)
			assert.Equal(t, got.Deposit.Sub(got.PlatformFee).Cents(), got.SitterPayout.Cents(),
				"babysitter_amount == deposit - platform_fee for rate %d", rate)
			assert.False(t, got.SitterPayout.IsNegative(), "payout never negative for rate %d", rate)
		}
	})

	t.Run("deterministic for invoice regeneration", func(t *testing.T) {
		first := schedule.Compute(reservation.NewMoney(3141))
		second := schedule.Compute(reservation.NewMoney(3141))
		assert.Equal(t, first, second)
	})

	t.Run("platform fee rounds to nearest cent", func(t *testing.T) {
		// 15% of 10.01 = 1.5015 -> 1.50
		got := schedule.Compute(reservation.NewMoney(1001))
		assert.Equal(t, int64(150), got.PlatformFee.Cents())
	})
}

func TestMoney_DecimalConversion(t *testing.T) {
	m := reservation.NewMoneyFromDecimal(22.00)
	assert.Equal(t, int64(2200), m.Cents())
	assert.Equal(t, 22.00, m.Decimal())

	// Classic float trap: 19.99 must survive the round trip exactly.
	m = reservation.NewMoneyFromDecimal(19.99)
	assert.Equal(t, int64(1999), m.Cents())
}
