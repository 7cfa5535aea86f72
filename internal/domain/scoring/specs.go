// Package scoring holds the pure scoring functions of the recommendation engine.
//
// Every function is deterministic and total: malformed specs fall back to neutral values and
// every score lies in [0, 100].
package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern    = regexp.MustCompile(`\d+`)
	megapixelPattern = regexp.MustCompile(`(\d+)\s*MP`)
)

// firstNumber extracts the first integer in s, or 0 when there is none.
func firstNumber(s string) int {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	return n
}

// BatteryMAh parses a capacity such as "5000mAh" or "4,500 mAh". Unparseable input yields 0.
func BatteryMAh(battery string) int {
	return firstNumber(strings.ReplaceAll(battery, ",", ""))
}

// RefreshHz parses a refresh rate such as "120Hz". Unparseable input yields 0.
func RefreshHz(refresh string) int {
	return firstNumber(refresh)
}

// Megapixels returns the largest sensor resolution listed in a camera description.
func Megapixels(camera string) int {
	best := 0
	for _, m := range megapixelPattern.FindAllStringSubmatch(camera, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}

	return best
}

func clamp(score int) int {
	return max(0, min(100, score))
}

// tenths returns n/10 of a non-negative score, rounded half up.
func tenths(n, score int) int {
	return (n*score + 5) / 10
}
