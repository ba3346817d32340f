package models

// AnalyzeRequest is the body of POST /api/analyze. The mobile client sends
// camelCase keys.
type AnalyzeRequest struct {
	JobTitle   string   `json:"jobTitle"`
	UserSkills []string `json:"userSkills"`
}

// AnalysisMetadata summarizes one completed analysis. Computed once at the
// end of a request from the other response fields.
type AnalysisMetadata struct {
	TotalMarketSkills int           `json:"totalMarketSkills"`
	TotalMatched      int           `json:"totalMatched"`
	TotalMissing      int           `json:"totalMissing"`
	RoadmapWeeks      int           `json:"roadmapWeeks"`
	ProcessingTimeMs  int64         `json:"processingTimeMs"`
	RoadmapSource     RoadmapSource `json:"roadmapSource"`
}

// AnalysisResult is the full analysis response. Top-level keys are
// snake_case to match the data service payloads, metadata keys camelCase to
// match the request body.
type AnalysisResult struct {
	Success       bool             `json:"success"`
	JobTitle      string           `json:"job_title"`
	MarketSkills  []string         `json:"market_skills"`
	MatchedSkills []string         `json:"matched_skills"`
	MissingSkills []string         `json:"missing_skills"`
	Roadmap       []RoadmapWeek    `json:"roadmap"`
	Metadata      AnalysisMetadata `json:"metadata"`
}

type AnalysisListResponse struct {
	Analyses []Analysis `json:"analyses"`
	Count    int        `json:"count"`
}
