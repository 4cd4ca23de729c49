package renderer

import (
	"fmt"
	"strings"

	"github.com/privfolio/privfolio"
)

// sparks are the block glyphs used to plot a trend, lowest to highest.
var sparks = []rune("▁▂▃▄▅▆▇█")

// Chart plots the balance trend as a one-line sparkline bracketed by the
// range it covers.
func Chart(trend []privfolio.TrendPoint) string {
	if len(trend) == 0 {
		return ""
	}

	min, max := trend[0].Balance.AsFloat(), trend[0].Balance.AsFloat()
	for _, p := range trend[1:] {
		v := p.Balance.AsFloat()
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var line strings.Builder
	span := max - min
	for _, p := range trend {
		i := 0
		if span > 0 {
			i = int((p.Balance.AsFloat() - min) / span * float64(len(sparks)-1))
		}
		line.WriteRune(sparks[i])
	}

	first, last := trend[0].Month.Format("2006-01"), trend[len(trend)-1].Month.Format("2006-01")
	return fmt.Sprintf("%s .. %s\n%s\nlow %.2f high %.2f", first, last, line.String(), min, max)
}
