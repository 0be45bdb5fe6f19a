// Package pension implements the FERS annual benefit calculation.
//
// The calculation is pure and total: any numeric input produces a result,
// with no validation of physically sensible ranges. That is deliberate -
// range checking belongs to the caller, and the function must reproduce
// the eligibility boundaries exactly (age 62 with 20.0 years selects the
// higher multiplier; one short on either axis does not).
package pension

// FERS basic annuity multipliers.
const (
	// StandardMultiplier applies to most retirements (1.0% per year).
	StandardMultiplier = 0.01

	// EnhancedMultiplier applies at age 62 or later with at least 20
	// years of service (1.1% per year).
	EnhancedMultiplier = 0.011
)

// Eligibility thresholds for the enhanced multiplier.
const (
	enhancedMinAge   = 62
	enhancedMinYears = 20.0
)

// Multiplier selects the per-year benefit multiplier for a retirement at
// the given age with the given years of creditable service. Both
// boundaries are inclusive: exactly age 62 with exactly 20.0 years earns
// the enhanced rate.
func Multiplier(serviceYears float64, ageAtRetirement int) float64 {
	if ageAtRetirement >= enhancedMinAge && serviceYears >= enhancedMinYears {
		return EnhancedMultiplier
	}
	return StandardMultiplier
}

// Compute returns the annual FERS basic benefit:
// high-three average salary x service years x multiplier.
//
// Deterministic, no side effects, no failure path for numeric input.
func Compute(serviceYears, highThreeAverage float64, ageAtRetirement int) float64 {
	return highThreeAverage * serviceYears * Multiplier(serviceYears, ageAtRetirement)
}

// Input bundles the three calculation inputs as they arrive from a shell.
type Input struct {
	ServiceYears     float64 `json:"service_years" yaml:"service_years"`
	HighThreeAverage float64 `json:"high_three" yaml:"high_three"`
	AgeAtRetirement  int     `json:"age_at_retirement" yaml:"age_at_retirement"`
}

// Result carries the benefit together with the multiplier that was
// selected, which the front end displays alongside the amount.
type Result struct {
	AnnualBenefit  float64 `json:"annual_benefit"`
	MonthlyBenefit float64 `json:"monthly_benefit"`
	Multiplier     float64 `json:"multiplier"`
}

// Calculate is the struct-shaped variant of Compute used by the shells.
func Calculate(in Input) Result {
	m := Multiplier(in.ServiceYears, in.AgeAtRetirement)
	annual := in.HighThreeAverage * in.ServiceYears * m
	return Result{
		AnnualBenefit:  annual,
		MonthlyBenefit: annual / 12,
		Multiplier:     m,
	}
}
