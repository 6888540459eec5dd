// ABOUTME: Pure trend analysis over a numeric time series.
// ABOUTME: Least-squares classification with a percent-change fallback for short series.
package stats

import (
	"math"
	"sort"
	"time"
)

// Direction is the three-way trend classification.
type Direction string

const (
	Increasing Direction = "increasing"
	Decreasing Direction = "decreasing"
	Stable     Direction = "stable"
)

// Quality buckets R² into a qualitative fit label for display.
type Quality string

const (
	QualityStrong   Quality = "strong"
	QualityModerate Quality = "moderate"
	QualityWeak     Quality = "weak"
	QualityNone     Quality = "none"
)

const (
	// rSquaredGate is the minimum fit significance before a non-zero
	// slope is allowed to classify as a trend.
	rSquaredGate = 0.3
	// slopeGateFraction is the slope magnitude floor, as a fraction of
	// the series mean.
	slopeGateFraction = 0.01
	// percentBand is the ± band for the short-series percent-change rule.
	percentBand = 5.0
)

// DataPoint is one timestamped observation.
type DataPoint struct {
	Date  time.Time
	Value float64
}

// Trend summarizes a series: descriptive statistics, a direction
// classification, and, when the regression path applies, the fit and a
// one-step-ahead prediction.
type Trend struct {
	Direction     Direction
	Mean          float64
	Median        float64
	StdDev        float64
	Volatility    float64 // coefficient of variation, percent
	PercentChange float64
	Slope         float64
	Intercept     float64
	RSquared      float64
	Prediction    *float64
	Count         int
}

// FitQuality buckets the trend's R² into a qualitative label.
func (t Trend) FitQuality() Quality {
	switch {
	case t.RSquared >= 0.8:
		return QualityStrong
	case t.RSquared >= 0.5:
		return QualityModerate
	case t.RSquared >= rSquaredGate:
		return QualityWeak
	default:
		return QualityNone
	}
}

// Analyze classifies a time series. The input is re-sorted by date, so
// callers need not order it. The computation is pure and deterministic.
func Analyze(points []DataPoint) Trend {
	sorted := make([]DataPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	t := Trend{Direction: Stable, Count: len(sorted)}
	if len(sorted) == 0 {
		return t
	}

	values := make([]float64, len(sorted))
	for i, p := range sorted {
		values[i] = p.Value
	}

	t.Mean = mean(values)
	t.Median = median(values)
	if t.Mean != 0 {
		t.StdDev = sampleStdDev(values, t.Mean)
		t.Volatility = t.StdDev / t.Mean * 100
	}
	if first := values[0]; first != 0 {
		t.PercentChange = (values[len(values)-1] - first) / first * 100
	}

	if len(sorted) < 3 {
		t.Direction = classifyPercentChange(t.PercentChange)
		return t
	}

	t.Slope, t.Intercept = leastSquares(values)
	t.RSquared = rSquared(values, t.Slope, t.Intercept, t.Mean)

	if t.RSquared > rSquaredGate && math.Abs(t.Slope) > slopeGateFraction*math.Abs(t.Mean) {
		if t.Slope > 0 {
			t.Direction = Increasing
		} else {
			t.Direction = Decreasing
		}
	}

	next := t.Slope*float64(len(values)) + t.Intercept
	t.Prediction = &next
	return t
}

// classifyPercentChange applies the ±5% band used for short series.
func classifyPercentChange(pct float64) Direction {
	switch {
	case pct > percentBand:
		return Increasing
	case pct < -percentBand:
		return Decreasing
	default:
		return Stable
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median averages the two middle values for even counts. The input must
// already be in date order; values are re-sorted numerically on a copy.
func median(values []float64) float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)

	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// sampleStdDev uses the n−1 denominator and is zero for fewer than two
// points.
func sampleStdDev(values []float64, m float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// leastSquares fits y = slope*x + intercept with x as the 0-based index.
func leastSquares(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// rSquared computes the coefficient of determination against the sample
// mean. A flat series fitted by a flat line is a perfect fit; a zero
// total variance with a non-zero slope cannot happen from a real fit but
// guards the division anyway.
func rSquared(values []float64, slope, intercept, m float64) float64 {
	var ssRes, ssTot float64
	for i, v := range values {
		fit := slope*float64(i) + intercept
		ssRes += (v - fit) * (v - fit)
		ssTot += (v - m) * (v - m)
	}

	if ssTot == 0 {
		if slope == 0 {
			return 1.0
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
