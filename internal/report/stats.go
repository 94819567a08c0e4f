package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	crore = 1e7
	lakh  = 1e5
)

// round matches the half-up rounding used by the dashboard clients.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Utilization is round(100*utilized/allocated), or 0 when nothing is allocated.
func Utilization(allocated, utilized float64) int {
	if allocated <= 0 {
		return 0
	}
	return round(utilized / allocated * 100)
}

// AttendanceRate is round(100*present/total), or fallback when there are no records.
func AttendanceRate(present, total int64, fallback int) int {
	if total <= 0 {
		return fallback
	}
	return round(float64(present) / float64(total) * 100)
}

// Share is part as a percentage of total with one decimal, 0 for an empty total.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}

// Crores converts rupees to crores rounded to two decimals (chart axis unit).
func Crores(v float64) float64 {
	return math.Round(v/crore*100) / 100
}

var printer = message.NewPrinter(language.English)

// FormatCurrency renders rupee amounts: "₹15.00 Cr", "₹25.00 L", "₹500".
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "₹0"
	}
	switch {
	case v >= crore:
		return fmt.Sprintf("₹%.2f Cr", v/crore)
	case v >= lakh:
		return fmt.Sprintf("₹%.2f L", v/lakh)
	}
	return "₹" + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatBeneficiaries compacts a head count: 2500000 -> "25L+", 4500 -> "5K+".
func FormatBeneficiaries(n int64) string {
	switch {
	case n >= lakh:
		return fmt.Sprintf("%dL+", round(float64(n)/lakh))
	case n >= 1000:
		return fmt.Sprintf("%dK+", round(float64(n)/1000))
	}
	return fmt.Sprintf("%d", n)
}
