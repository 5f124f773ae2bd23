package model

// RiskProfile classifies an investor's risk tolerance. Each profile imposes a
// different age-to-equity curve in the allocation engine.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// AllocationMethod selects how the equity/debt split is derived.
type AllocationMethod string

const (
	// MethodRiskProfile derives the equity percentage from the investor's age
	// and risk profile.
	MethodRiskProfile AllocationMethod = "risk_profile"

	// MethodCustom uses a caller-supplied equity percentage in [0, 100].
	MethodCustom AllocationMethod = "custom"
)

// UserProfile describes an investor for a single planning request.
// It is constructed once from external input and immutable thereafter.
type UserProfile struct {
	Age                  int     `json:"age"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyInvestment    float64 `json:"monthly_investment"`
	LumpSumInvestment    float64 `json:"lump_sum_investment"`
	HasEmergencyFund     bool    `json:"has_emergency_fund"`
	HasAdequateInsurance bool    `json:"has_adequate_insurance"`
}

// InvestmentSummary aggregates the profile's stated investment amounts.
type InvestmentSummary struct {
	MonthlySIP     float64 `json:"monthly_sip"`
	AnnualSIP      float64 `json:"annual_sip"`
	LumpSum        float64 `json:"lumpsum"`
	FirstYearTotal float64 `json:"first_year_total"`
}

// InvestmentSummary returns the yearly view of the profile's investable amounts.
func (p UserProfile) InvestmentSummary() InvestmentSummary {
	annual := p.MonthlyInvestment * 12
	return InvestmentSummary{
		MonthlySIP:     p.MonthlyInvestment,
		AnnualSIP:      annual,
		LumpSum:        p.LumpSumInvestment,
		FirstYearTotal: annual + p.LumpSumInvestment,
	}
}
