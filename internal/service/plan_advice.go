package service

import "github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/model"

// planWarnings returns advisory warnings for the profile and derived equity
// percentage. Warnings never alter the arithmetic of the plan.
func planWarnings(p model.UserProfile, equityPct float64) []string {
	warnings := []string{}

	if !p.HasEmergencyFund && equityPct > 50 {
		warnings = append(warnings,
			"Build six months of emergency fund before investing heavily in equity; keep it in liquid or savings accounts for immediate access.")
	}
	if !p.HasAdequateInsurance {
		warnings = append(warnings,
			"Ensure adequate term life and health insurance before an aggressive equity allocation.")
	}
	if equityPct > 80 {
		warnings = append(warnings,
			"Equity allocation above 80% carries significant volatility and suits only horizons of ten years or more.")
	}
	if p.Age > 60 && equityPct > 50 {
		warnings = append(warnings,
			"Above age 60, consider reducing equity exposure for capital preservation.")
	}
	if p.MonthlyInvestment > 0 && p.MonthlyInvestment < 5000 {
		warnings = append(warnings,
			"Consider increasing the monthly investment gradually as income grows; even small increases compound over time.")
	}
	if p.MonthlyIncome > 0 && p.MonthlyInvestment/p.MonthlyIncome > 0.5 {
		warnings = append(warnings,
			"Investing more than half of monthly income is aggressive; keep adequate funds for living expenses and emergencies.")
	}

	return warnings
}

// planRecommendations returns general guidance attached to every plan, plus
// equity-level specifics.
func planRecommendations(p model.UserProfile, equityPct float64) []string {
	recs := []string{
		"Keep the portfolio simple with five to seven funds in total.",
		"Review the portfolio annually and rebalance when any allocation drifts beyond its trigger band.",
		"Do not time the market; maintain diversified portions matching age, goals and risk appetite.",
	}

	if equityPct > 30 {
		recs = append(recs,
			"Use low-cost index funds as the core equity holding for market returns at minimal expense ratios.")
	}
	if p.MonthlyInvestment > 0 {
		recs = append(recs,
			"Continue SIPs regardless of market conditions; rupee cost averaging works best over ten or more years.")
	}
	if equityPct > 40 {
		recs = append(recs,
			"Hold equity funds for more than a year to qualify for long-term capital gains treatment.")
	}

	return recs
}
