package stats

// ReviewerStats summarizes one reviewer's workload and results.
type ReviewerStats struct {
	PendingAudits        int     `json:"pending_audits"`
	CompletedToday       int     `json:"completed_today"`
	CompletedTotal       int     `json:"completed_total"`
	DailyQuota           int     `json:"daily_quota"`
	CompletionPercentage float64 `json:"completion_percentage"`
	AverageScore         float64 `json:"average_score"`
}

// TeamStats summarizes audit throughput across the whole reviewer pool.
type TeamStats struct {
	TotalAudits    int     `json:"team_total_audits"`
	AverageScore   float64 `json:"team_avg_score"`
	ComplianceRate float64 `json:"team_compliance_rate"`
	FlaggedAudits  int     `json:"flagged_audits"`
}
