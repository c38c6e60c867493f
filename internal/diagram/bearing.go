package diagram

import (
	"math"
	"regexp"
	"strconv"
)

// DefaultBearing is drawn when a bearing question states no angle.
const DefaultBearing = 135.0

const (
	compassCX     = 150.0
	compassCY     = 150.0
	compassR      = 120.0
	bearingLineR  = 100.0
	bearingArcR   = 20.0
	bearingLabelR = 40.0
)

var bearingRe = regexp.MustCompile(`(?i)bearing\s+of\s+(\d+(?:\.\d+)?)\s*(?:°|º|degrees?)`)

// ParseBearing extracts N from "bearing of N°" (or "N degrees").
func ParseBearing(text string) (float64, bool) {
	m := bearingRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// BearingPoint projects a compass bearing (clockwise from north) onto the
// canvas at radius r around (cx, cy).
func BearingPoint(cx, cy, r, bearing float64) Point {
	rad := (bearing - 90) * math.Pi / 180
	return Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

// BearingEndpoint is where the direction line of a bearing diagram ends.
func BearingEndpoint(bearing float64) Point {
	return BearingPoint(compassCX, compassCY, bearingLineR, bearing)
}
