package domain

// Price price breakdown in whole rupees
type Price struct {
	Base  int64
	Tax   int64
	Total int64
}

// CalculatePrice вычисляет стоимость: base = 1000 * h, tax = 20% base, total = 1200 * h
// Используется целочисленная арифметика, поэтому суммы точные
func CalculatePrice(durationHours int) Price {
	if durationHours < 0 {
		durationHours = 0
	}
	base := int64(BaseRatePerHour) * int64(durationHours)
	tax := base * TaxRatePercent / 100
	return Price{
		Base:  base,
		Tax:   tax,
		Total: base + tax,
	}
}

// IsValidDuration проверяет, что длительность входит в {1,2,3,4}
func IsValidDuration(hours int) bool {
	return hours >= MinDuration && hours <= MaxDuration
}

// DurationOptions возвращает допустимые длительности в часах
func DurationOptions() []int {
	options := make([]int, 0, MaxDuration-MinDuration+1)
	for h := MinDuration; h <= MaxDuration; h++ {
		options = append(options, h)
	}
	return options
}
