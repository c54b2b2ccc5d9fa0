package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatRupiah memformat nominal ke format Rupiah dengan pemisah ribuan,
// tanpa digit desimal (harga menu selalu bulat).
// Contoh: 15000 -> "Rp 15.000"
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}

	return "Rp " + sign + strings.Join(parts, ".")
}
