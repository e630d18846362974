package service

// DerivePoolPricing computes the daily and total price of a pileta booking
// from per-person daily rates and the inclusive day count. Prices for the
// pool are always derived, never accepted as free-form input. Negative
// counts or rates are coerced to zero rather than rejected: an all-zero
// booking is valid and simply costs nothing.
func DerivePoolPricing(adults, children int, adultRate, childRate float64, days int) (dailyPrice, totalPrice float64) {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	if adultRate < 0 {
		adultRate = 0
	}
	if childRate < 0 {
		childRate = 0
	}
	if days < 0 {
		days = 0
	}
	dailyPrice = float64(adults)*adultRate + float64(children)*childRate
	totalPrice = dailyPrice * float64(days)
	return dailyPrice, totalPrice
}

// resolveExclusivePricing decides the stored prices of an exclusive-unit
// booking. Supplied values win; with only a daily price present the total
// is kept consistent with the current duration.
func resolveExclusivePricing(daily, total *float64, days int) (*float64, *float64) {
	if daily != nil && total == nil {
		t := *daily * float64(days)
		total = &t
	}
	return daily, total
}
