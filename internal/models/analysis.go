package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AnalysisSource string

const (
	SourceManual AnalysisSource = "manual"
	SourceResume AnalysisSource = "resume"
)

// RoadmapSource records where a roadmap came from: the AI provider or the
// deterministic fallback plan.
type RoadmapSource string

const (
	RoadmapSourceAI       RoadmapSource = "ai"
	RoadmapSourceFallback RoadmapSource = "fallback"
)

// RoadmapWeek is one week of a learning roadmap. Weeks are never mutated
// after the generator produces them.
type RoadmapWeek struct {
	Week        int      `json:"week"`
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Resources   []string `json:"resources"`
	Link        string   `json:"link"`
}

type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle         string         `gorm:"type:text" json:"job_title"`
	Source           AnalysisSource `gorm:"type:text;default:'manual'" json:"source"`
	MarketSkills     StringList     `gorm:"type:jsonb" json:"market_skills"`
	MatchedSkills    StringList     `gorm:"type:jsonb" json:"matched_skills"`
	MissingSkills    StringList     `gorm:"type:jsonb" json:"missing_skills"`
	Roadmap          RoadmapWeeks   `gorm:"type:jsonb" json:"roadmap"`
	RoadmapSource    RoadmapSource  `gorm:"type:text" json:"roadmap_source"`
	ProcessingTimeMs int64          `gorm:"type:bigint" json:"processing_time_ms"`
	CreatedAt        time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (a *Analysis) TableName() string {
	return "analyses"
}

// StringList stores a []string as a jsonb column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// RoadmapWeeks stores a []RoadmapWeek as a jsonb column.
type RoadmapWeeks []RoadmapWeek

func (r RoadmapWeeks) Value() (driver.Value, error) {
	if r == nil {
		r = RoadmapWeeks{}
	}
	return json.Marshal(r)
}

func (r *RoadmapWeeks) Scan(value interface{}) error {
	if value == nil {
		*r = RoadmapWeeks{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type for RoadmapWeeks: %T", value)
	}
}
