package password

import (
	"math"
	"strconv"

	"github.com/redactyl/seclab/internal/types"
)

// Attacker guess rates in guesses per second.
const (
	onlineRate  = 10  // throttled login form
	offlineRate = 1e9 // stolen fast hash on commodity hardware
)

type unit struct {
	label   string
	seconds float64
}

var units = []unit{
	{"year", 60 * 60 * 24 * 365},
	{"day", 60 * 60 * 24},
	{"hour", 60 * 60},
	{"minute", 60},
}

// crackTimes estimates average-case (half the keyspace) crack times.
func crackTimes(entropyBits float64) types.CrackTimes {
	var combinations float64
	if entropyBits > 0 {
		combinations = math.Pow(2, entropyBits)
	}
	avg := combinations / 2
	ct := types.CrackTimes{
		OnlineSeconds:  avg / onlineRate,
		OfflineSeconds: avg / offlineRate,
	}
	ct.OnlineDisplay = FormatDuration(ct.OnlineSeconds)
	ct.OfflineDisplay = FormatDuration(ct.OfflineSeconds)
	return ct
}

// FormatDuration renders seconds in the largest whole unit it reaches, from
// minutes up to years. Smaller values are shown in seconds, always with the
// plural "seconds". Zero, negative and NaN durations are "instant".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds <= 0 {
		return "instant"
	}
	for _, u := range units {
		if seconds >= u.seconds {
			v := math.Round(seconds / u.seconds)
			label := u.label
			if v != 1 {
				label += "s"
			}
			return formatCount(v) + " " + label
		}
	}
	return formatCount(math.Round(seconds)) + " seconds"
}

// formatCount prints a rounded count the way a JavaScript number prints:
// plain digits below 1e21, exponent form above, "Infinity" on overflow.
func formatCount(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
