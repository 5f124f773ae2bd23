package request

// ProfilePayload carries the investor profile fields shared by plan requests.
type ProfilePayload struct {
	Age                  int     `json:"age"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyInvestment    float64 `json:"monthly_investment"`
	LumpSumInvestment    float64 `json:"lump_sum_investment"`
	HasEmergencyFund     bool    `json:"has_emergency_fund"`
	HasAdequateInsurance bool    `json:"has_adequate_insurance"`
}

// CreatePlanRequest represents the request body for computing a plan.
// Name is only used when the plan is saved. Optional fields default from the
// profile's age: risk profile, equity strategy and debt strategy.
type CreatePlanRequest struct {
	Name                   string         `json:"name"`
	Profile                ProfilePayload `json:"profile"`
	Method                 string         `json:"method,omitempty"`
	RiskProfile            string         `json:"risk_profile,omitempty"`
	EquityStrategy         string         `json:"equity_strategy,omitempty"`
	DebtStrategy           string         `json:"debt_strategy,omitempty"`
	CustomEquityPercentage *float64       `json:"custom_equity_percentage,omitempty"`
	AddInternational       bool           `json:"add_international,omitempty"`
}
