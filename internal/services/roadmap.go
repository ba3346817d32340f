package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"forwardai/skill-gap-analyzer/internal/models"
)

// RoadmapService builds a weekly learning plan for the missing skills. It
// never fails: when Gemini is unavailable or returns something unusable, the
// deterministic fallback plan is returned instead.
type RoadmapService interface {
	GenerateRoadmap(ctx context.Context, jobTitle string, missingSkills, knownSkills []string) ([]models.RoadmapWeek, models.RoadmapSource)
}

type roadmapService struct {
	gemini        GeminiService
	resources     ResourceLibraryService
	promptBuilder *PromptBuilder
}

// NewRoadmapService creates a RoadmapService. Both gemini and resources may
// be nil; a nil gemini means every roadmap is a fallback plan.
func NewRoadmapService(gemini GeminiService, resources ResourceLibraryService) RoadmapService {
	return &roadmapService{
		gemini:        gemini,
		resources:     resources,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateRoadmap implements RoadmapService.
func (s *roadmapService) GenerateRoadmap(ctx context.Context, jobTitle string, missingSkills, knownSkills []string) ([]models.RoadmapWeek, models.RoadmapSource) {
	// No skill gap: nothing to generate, one celebratory week.
	if len(missingSkills) == 0 {
		return []models.RoadmapWeek{completionWeek(jobTitle)}, models.RoadmapSourceFallback
	}

	if s.gemini == nil {
		log.Println("🔑 Gemini not configured. Using fallback roadmap.")
		return s.buildFallbackRoadmap(ctx, missingSkills), models.RoadmapSourceFallback
	}

	prompt := s.promptBuilder.BuildRoadmapPrompt(jobTitle, missingSkills, knownSkills)

	response, err := s.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("⚠️  Roadmap generation failed: %v. Using fallback roadmap.\n", err)
		return s.buildFallbackRoadmap(ctx, missingSkills), models.RoadmapSourceFallback
	}

	weeks, err := parseRoadmapResponse(response)
	if err != nil {
		log.Printf("⚠️  Failed to parse roadmap response: %v. Using fallback roadmap.\n", err)
		return s.buildFallbackRoadmap(ctx, missingSkills), models.RoadmapSourceFallback
	}

	return weeks, models.RoadmapSourceAI
}

// roadmapParser is one parsing strategy for the raw Gemini output.
// Strategies are tried in order until one succeeds.
type roadmapParser func(text string) ([]models.RoadmapWeek, error)

var roadmapParsers = []roadmapParser{
	parseWholeResponse,
	parseWithoutCodeFences,
	parseBracketedArray,
}

// parseRoadmapResponse recovers a week array from whatever Gemini returned:
// a bare JSON array, an object wrapping a "roadmap" array, a markdown code
// block, or an array buried in prose.
func parseRoadmapResponse(response string) ([]models.RoadmapWeek, error) {
	var lastErr error
	for _, parse := range roadmapParsers {
		weeks, err := parse(response)
		if err == nil {
			return normalizeWeeks(weeks), nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no parsing strategy succeeded: %w", lastErr)
}

func parseWholeResponse(text string) ([]models.RoadmapWeek, error) {
	trimmed := strings.TrimSpace(text)

	var weeks []models.RoadmapWeek
	if err := json.Unmarshal([]byte(trimmed), &weeks); err == nil {
		return weeks, nil
	}

	// Some model runs wrap the array in an object.
	var wrapped struct {
		Roadmap []models.RoadmapWeek `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapped); err != nil {
		return nil, fmt.Errorf("response is not a roadmap array or object: %w", err)
	}
	if wrapped.Roadmap == nil {
		return nil, fmt.Errorf("response object has no roadmap array")
	}

	return wrapped.Roadmap, nil
}

func parseWithoutCodeFences(text string) ([]models.RoadmapWeek, error) {
	stripped := strings.ReplaceAll(text, "```json", "")
	stripped = strings.ReplaceAll(stripped, "```", "")
	return parseWholeResponse(stripped)
}

func parseBracketedArray(text string) ([]models.RoadmapWeek, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var weeks []models.RoadmapWeek
	if err := json.Unmarshal([]byte(text[start:end+1]), &weeks); err != nil {
		return nil, fmt.Errorf("bracketed substring is not a roadmap array: %w", err)
	}

	return weeks, nil
}

// normalizeWeeks applies per-field defaults so a partially filled week from
// the model still renders: a missing week number becomes its 1-based index,
// missing resources become an empty list.
func normalizeWeeks(weeks []models.RoadmapWeek) []models.RoadmapWeek {
	out := make([]models.RoadmapWeek, 0, len(weeks))
	for i, week := range weeks {
		if week.Week <= 0 {
			week.Week = i + 1
		}
		if week.Resources == nil {
			week.Resources = []string{}
		}
		out = append(out, week)
	}
	return out
}

// buildFallbackRoadmap creates one week per missing skill, in input order.
// Resources come from the learning resource library when it is available,
// generic templates otherwise.
func (s *roadmapService) buildFallbackRoadmap(ctx context.Context, missingSkills []string) []models.RoadmapWeek {
	weeks := make([]models.RoadmapWeek, 0, len(missingSkills))

	for i, skill := range missingSkills {
		week := models.RoadmapWeek{
			Week:        i + 1,
			Topic:       skill,
			Description: fmt.Sprintf("Focus on learning %s from the ground up. Start with the basics, then build a small practice project to apply what you learned.", skill),
			Resources:   genericResources(skill),
			Link:        searchLink(skill),
		}

		if curated := s.curatedResources(ctx, skill); len(curated) > 0 {
			week.Resources = curated
		}

		weeks = append(weeks, week)
	}

	return weeks
}

// curatedResources looks up the resource library for a skill. Any failure
// falls back to the generic templates.
func (s *roadmapService) curatedResources(ctx context.Context, skill string) []string {
	if s.resources == nil || s.gemini == nil {
		return nil
	}

	embedding, err := s.gemini.GenerateEmbedding(ctx, s.promptBuilder.BuildResourceQuery(skill))
	if err != nil {
		log.Printf("⚠️  Failed to embed resource query for %q: %v\n", skill, err)
		return nil
	}

	results, err := s.resources.SearchResources(ctx, embedding, 3)
	if err != nil {
		log.Printf("⚠️  Resource library search failed for %q: %v\n", skill, err)
		return nil
	}

	var out []string
	for _, r := range results {
		out = append(out, fmt.Sprintf("%s (%s)", r.Title, r.URL))
	}
	return out
}

func completionWeek(jobTitle string) models.RoadmapWeek {
	return models.RoadmapWeek{
		Week:        1,
		Topic:       "Advanced Practice & Portfolio Building",
		Description: fmt.Sprintf("You already have every in-demand skill for the %s role. Spend this week polishing your portfolio and building a showcase project.", jobTitle),
		Resources: []string{
			"Build a portfolio project that combines your strongest skills",
			"Contribute to an open source project in your field",
			"Practice interview questions for your target role",
		},
		Link: "https://www.google.com/search?q=" + url.QueryEscape(jobTitle+" portfolio project ideas"),
	}
}

func genericResources(skill string) []string {
	return []string{
		fmt.Sprintf("%s official documentation", skill),
		fmt.Sprintf("%s crash course on YouTube", skill),
		fmt.Sprintf("Hands-on %s practice project", skill),
	}
}

func searchLink(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query+" tutorial")
}
