package reservation

// FeeSchedule holds the marketplace pricing constants. The values come from
// configuration; the arithmetic below is deterministic so invoices can be
// regenerated from the same inputs.
type FeeSchedule struct {
	ServiceFee         Money
	PlatformFeePercent float64
}

func NewFeeSchedule(serviceFeeCents int64, platformFeePercent float64) FeeSchedule {
	return FeeSchedule{
		ServiceFee:         NewMoney(serviceFeeCents),
		PlatformFeePercent: platformFeePercent,
	}
}

// Deposit is one hour's pay reserved upfront from the parent.
func (f FeeSchedule) Deposit(hourlyRate Money) Money {
	return hourlyRate
}

// TotalDeposit is the amount actually charged to the parent: the deposit plus
// the flat parent-facing service fee.
func (f FeeSchedule) TotalDeposit(deposit Money) Money {
	return deposit.Add(f.ServiceFee)
}

// PlatformFee is the marketplace cut, deducted from the babysitter payout.
// It is separate from the parent-facing service fee.
func (f FeeSchedule) PlatformFee(deposit Money) Money {
	return deposit.Percent(f.PlatformFeePercent)
}

// SitterPayout is the deposit net of the platform fee.
func (f FeeSchedule) SitterPayout(deposit, platformFee Money) Money {
	return deposit.Sub(platformFee)
}

// Breakdown is the full computed money snapshot stored on a reservation.
type FeeBreakdown struct {
	HourlyRate   Money
	Deposit      Money
	ServiceFee   Money
	PlatformFee  Money
	SitterPayout Money
	TotalDeposit Money
}

func (f FeeSchedule) Compute(hourlyRate Money) FeeBreakdown {
	deposit := f.Deposit(hourlyRate)
	platformFee := f.PlatformFee(deposit)
	return FeeBreakdown{
		HourlyRate:   hourlyRate,
		Deposit:      deposit,
		ServiceFee:   f.ServiceFee,
		PlatformFee:  platformFee,
		SitterPayout: f.SitterPayout(deposit, platformFee),
		TotalDeposit: f.TotalDeposit(deposit),
	}
}
