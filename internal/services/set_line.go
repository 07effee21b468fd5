package services

import (
	"fmt"
	"strconv"
	"strings"
)

// SetLineFormat holds the fmt patterns used to render one set, e.g.
// "Set 2: 8 reps @ 155 lbs (RPE 8)".
type SetLineFormat struct {
	Label  string
	Reps   string
	Weight string
	RPE    string
}

var DefaultSetLineFormat = SetLineFormat{
	Label:  "Set %d",
	Reps:   "%d reps",
	Weight: "%s lbs",
	RPE:    "(RPE %s)",
}

// Line omits every absent field together with its label. Duration follows reps and weight as
// ", m:ss".
func (format SetLineFormat) Line(set SetDetail) string {
	var body strings.Builder
	if set.Reps != nil {
		fmt.Fprintf(&body, format.Reps, *set.Reps)
	}
	if set.Weight != nil {
		if body.Len() > 0 {
			body.WriteString(" @ ")
		}
		fmt.Fprintf(&body, format.Weight, FormatDecimal(*set.Weight))
	}
	if set.Duration != nil {
		if body.Len() > 0 {
			body.WriteString(", ")
		}
		body.WriteString(FormatDuration(*set.Duration))
	}
	if set.RPE != nil {
		if body.Len() > 0 {
			body.WriteString(" ")
		}
		fmt.Fprintf(&body, format.RPE, FormatDecimal(*set.RPE))
	}

	label := fmt.Sprintf(format.Label, set.SetNumber)
	if body.Len() == 0 {
		return label
	}
	return label + ": " + body.String()
}

// FormatDecimal prints at most two fractional digits without trailing zeros.
func FormatDecimal(value float64) string {
	return strconv.FormatFloat(roundTo(value, 2), 'f', -1, 64)
}

func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours, minutes, rest := seconds/3600, seconds%3600/60, seconds%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, rest)
	}
	return fmt.Sprintf("%d:%02d", minutes, rest)
}
