package pipeline

import (
	"regexp"
	"strconv"
)

var priceRun = regexp.MustCompile(`[\d.]+`)

// ParsePrice extracts the first run of digits and dots from a free-form price such
// as "from $23" and parses it. A range like "$12.5 - $40" yields 12.5. It returns
// nil when there is no run or the run is not a valid number (e.g. ".").
func ParsePrice(raw string) *float64 {
	run := priceRun.FindString(raw)
	if run == "" {
		return nil
	}
	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return nil
	}
	return &v
}
