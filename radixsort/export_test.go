package radixsort

// MaxIntDigits exposes the platform's decimal width of math.MaxInt.
const MaxIntDigits = maxIntDigits
