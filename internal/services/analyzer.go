package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"forwardai/skill-gap-analyzer/internal/models"
	"forwardai/skill-gap-analyzer/internal/repositories"
)

// AnalyzerService runs the analysis pipeline: validate input, fetch market
// skills, compute the skill gap, generate a roadmap, assemble the result.
type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResult, error)
	AnalyzeResume(ctx context.Context, jobTitle, resumeText string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	extractor    SkillExtractorService
	roadmap      RoadmapService
	analysisRepo repositories.AnalysisRepository
}

// NewAnalyzerService creates the orchestrator. analysisRepo may be nil for
// a gateway running without persistence.
func NewAnalyzerService(
	extractor SkillExtractorService,
	roadmap RoadmapService,
	analysisRepo repositories.AnalysisRepository,
) AnalyzerService {
	return &analyzerService{
		extractor:    extractor,
		roadmap:      roadmap,
		analysisRepo: analysisRepo,
	}
}

// Analyze implements AnalyzerService.
func (s *analyzerService) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResult, error) {
	jobTitle := strings.TrimSpace(req.JobTitle)
	if jobTitle == "" {
		return nil, NewInvalidInputError("jobTitle is required and must be a non-empty string")
	}
	if req.UserSkills == nil {
		return nil, NewInvalidInputError("userSkills is required and must be an array of strings")
	}

	start := time.Now()

	marketSkills, err := s.extractor.ExtractSkills(ctx, jobTitle)
	if err != nil {
		return nil, &UpstreamFailureError{JobTitle: jobTitle, Err: err}
	}

	return s.finish(ctx, jobTitle, marketSkills, req.UserSkills, models.SourceManual, start), nil
}

// AnalyzeResume implements AnalyzerService. The user's skills are derived by
// scanning the resume text for each market skill instead of being typed in.
func (s *analyzerService) AnalyzeResume(ctx context.Context, jobTitle, resumeText string) (*models.AnalysisResult, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, NewInvalidInputError("job_title is required and must be a non-empty string")
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, NewInvalidInputError("resume contains no readable text")
	}

	start := time.Now()

	marketSkills, err := s.extractor.ExtractSkills(ctx, jobTitle)
	if err != nil {
		return nil, &UpstreamFailureError{JobTitle: jobTitle, Err: err}
	}

	userSkills := scanSkills(marketSkills, resumeText)
	log.Printf("📄 Found %d of %d market skills in resume\n", len(userSkills), len(marketSkills))

	return s.finish(ctx, jobTitle, marketSkills, userSkills, models.SourceResume, start), nil
}

// finish runs the local half of the pipeline. Nothing here can fail: the
// gap calculation is pure and the roadmap generator absorbs its own errors.
func (s *analyzerService) finish(
	ctx context.Context,
	jobTitle string,
	marketSkills, userSkills []string,
	source models.AnalysisSource,
	start time.Time,
) *models.AnalysisResult {
	gap := ComputeGap(marketSkills, userSkills)

	roadmap, roadmapSource := s.roadmap.GenerateRoadmap(ctx, jobTitle, gap.MissingSkills, gap.MatchedSkills)

	elapsed := time.Since(start).Milliseconds()

	result := &models.AnalysisResult{
		Success:       true,
		JobTitle:      jobTitle,
		MarketSkills:  marketSkills,
		MatchedSkills: gap.MatchedSkills,
		MissingSkills: gap.MissingSkills,
		Roadmap:       roadmap,
		Metadata: models.AnalysisMetadata{
			TotalMarketSkills: len(marketSkills),
			TotalMatched:      len(gap.MatchedSkills),
			TotalMissing:      len(gap.MissingSkills),
			RoadmapWeeks:      len(roadmap),
			ProcessingTimeMs:  elapsed,
			RoadmapSource:     roadmapSource,
		},
	}

	s.saveAnalysis(result, source)

	return result
}

// saveAnalysis records a completed analysis. Best effort: a failed insert is
// logged but never fails the request.
func (s *analyzerService) saveAnalysis(result *models.AnalysisResult, source models.AnalysisSource) {
	if s.analysisRepo == nil {
		return
	}

	analysis := &models.Analysis{
		ID:               uuid.New(),
		JobTitle:         result.JobTitle,
		Source:           source,
		MarketSkills:     result.MarketSkills,
		MatchedSkills:    result.MatchedSkills,
		MissingSkills:    result.MissingSkills,
		Roadmap:          result.Roadmap,
		RoadmapSource:    result.Metadata.RoadmapSource,
		ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.analysisRepo.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to save analysis: %v\n", err)
	}
}

// scanSkills returns the market skills that appear in the resume text,
// case-insensitively, preserving market order.
func scanSkills(marketSkills []string, resumeText string) []string {
	lowerText := strings.ToLower(resumeText)

	found := []string{}
	for _, skill := range marketSkills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		if strings.Contains(lowerText, needle) {
			found = append(found, skill)
		}
	}

	return found
}
