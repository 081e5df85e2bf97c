// Package arrivals lays out the guest arrival stream of a simulation run
// before any event is processed.
package arrivals

// DemandProfile weighs each hour of the day by its share of daily arrivals.
// The weights are relative; generators normalize them before use.
type DemandProfile [24]float64

// DefaultDemandProfile returns the baseline demand shape: a small overnight
// trickle, a ramp through the morning, the strongest pull across the
// afternoon check-in window and a busy evening.
func DefaultDemandProfile() DemandProfile {
	var p DemandProfile
	for h := 0; h < 24; h++ {
		switch {
		case h >= 7 && h < 11:
			p[h] = 0.03
		case h >= 11 && h < 14:
			p[h] = 0.05
		case h >= 14 && h < 18:
			p[h] = 0.12
		case h >= 18 && h < 22:
			p[h] = 0.06
		default:
			p[h] = 0.02
		}
	}
	return p
}

// Normalized returns a copy of the profile scaled to sum to 1. A profile
// with no weight anywhere comes back unchanged.
func (p DemandProfile) Normalized() DemandProfile {
	sum := 0.0
	for _, w := range p {
		sum += w
	}

	if sum == 0 {
		return p
	}

	for h := range p {
		p[h] /= sum
	}
	return p
}
