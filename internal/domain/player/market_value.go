package player

import (
	"math"
	"strconv"
	"strings"
)

// Market values are stored in thousands of the display currency, so
// "Rp500Jt." becomes 500000 and "Rp1,2Mlyr." becomes 1200000.
var unitMultipliers = []struct {
	suffix string
	factor float64
}{
	{suffix: "miliar", factor: 1e6},
	{suffix: "mlyr", factor: 1e6},
	{suffix: "juta", factor: 1e3},
	{suffix: "ribu", factor: 1},
	{suffix: "mio", factor: 1e3},
	{suffix: "bn", factor: 1e6},
	{suffix: "jt", factor: 1e3},
	{suffix: "rb", factor: 1},
	{suffix: "m", factor: 1e3},
	{suffix: "k", factor: 1},
}

var currencyTokens = []string{"idr", "rp", "€", "eur", " ", "\u00a0"}

// ParseMarketValue converts a display valuation into a comparable number.
// Anything that does not reduce to a plain number yields 0.
func ParseMarketValue(raw string) float64 {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, token := range currencyTokens {
		value = strings.ReplaceAll(value, token, "")
	}
	value = strings.TrimRight(value, ".")

	factor := 1.0
	for _, unit := range unitMultipliers {
		if strings.HasSuffix(value, unit.suffix) {
			value = strings.TrimSuffix(value, unit.suffix)
			factor = unit.factor
			break
		}
	}
	value = strings.TrimRight(value, ".")

	number, ok := parseLocaleNumber(value)
	if !ok {
		return 0
	}

	return math.Round(number*factor*1000) / 1000
}

func parseLocaleNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	for _, r := range value {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return 0, false
		}
	}

	lastDot := strings.LastIndex(value, ".")
	lastComma := strings.LastIndex(value, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			value = strings.ReplaceAll(value, ".", "")
			value = strings.Replace(value, ",", ".", 1)
		} else {
			value = strings.ReplaceAll(value, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(value, ",") > 1 {
			return 0, false
		}
		value = strings.Replace(value, ",", ".", 1)
	case lastDot >= 0:
		if isThousandsGrouped(value) {
			value = strings.ReplaceAll(value, ".", "")
		}
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return 0, false
	}

	return number, true
}

// isThousandsGrouped reports whether every dot-separated group after the
// first has exactly three digits, as in "1.500.000".
func isThousandsGrouped(value string) bool {
	groups := strings.Split(value, ".")
	if len(groups) == 2 && len(groups[1]) != 3 {
		return false
	}
	for _, group := range groups[1:] {
		if len(group) != 3 {
			return false
		}
	}
	return groups[0] != ""
}
