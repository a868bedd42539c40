package device

// AirQuality is a bucketed CO₂ classification. Order matters: higher values
// are worse air.
type AirQuality int

const (
	AirQualityUnknown AirQuality = iota
	AirQualityGood
	AirQualityModerate
	AirQualityPoor
	AirQualityVeryPoor
	AirQualityExtremelyPoor
)

func (q AirQuality) String() string {
	switch q {
	case AirQualityGood:
		return "good"
	case AirQualityModerate:
		return "moderate"
	case AirQualityPoor:
		return "poor"
	case AirQualityVeryPoor:
		return "very_poor"
	case AirQualityExtremelyPoor:
		return "extremely_poor"
	default:
		return "unknown"
	}
}

// ClassifyAirQuality buckets a CO₂ concentration in ppm. The bands are
// half-open: a boundary value belongs to the worse band.
func ClassifyAirQuality(co2 *int) AirQuality {
	if co2 == nil || *co2 <= 0 {
		return AirQualityUnknown
	}

	switch ppm := *co2; {
	case ppm < 800:
		return AirQualityGood
	case ppm < 1200:
		return AirQualityModerate
	case ppm < 1800:
		return AirQualityPoor
	case ppm < 2100:
		return AirQualityVeryPoor
	default:
		return AirQualityExtremelyPoor
	}
}
