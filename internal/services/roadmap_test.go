package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forwardai/skill-gap-analyzer/internal/models"
)

type stubGemini struct {
	textResponse string
	textErr      error
	textCalls    int
	embedding    []float32
	embedErr     error
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.textCalls++
	if s.textErr != nil {
		return "", s.textErr
	}
	return s.textResponse, nil
}

func (s *stubGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return s.embedding, nil
}

type stubResourceLib struct {
	results   []LearningResource
	searchErr error
}

func (s *stubResourceLib) InitCollection() error { return nil }

func (s *stubResourceLib) UpsertResource(ctx context.Context, resource LearningResource, embedding []float32) error {
	return nil
}

func (s *stubResourceLib) SearchResources(ctx context.Context, queryEmbedding []float32, limit int) ([]LearningResource, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results, nil
}

const roadmapArray = `[
  {"week": 1, "topic": "Flutter SDK", "description": "Learn widgets.", "resources": ["a", "b"], "link": "https://docs.flutter.dev"},
  {"week": 2, "topic": "Firebase", "description": "Wire up auth.", "resources": ["c", "d"], "link": "https://firebase.google.com"}
]`

func TestParseRoadmapResponse_AllFormatsAgree(t *testing.T) {
	variants := map[string]string{
		"raw array":     roadmapArray,
		"fenced":        "```json\n" + roadmapArray + "\n```",
		"prose wrapped": "Here is your roadmap:\n" + roadmapArray + "\nGood luck!",
	}

	var baseline []models.RoadmapWeek
	for name, text := range variants {
		t.Run(name, func(t *testing.T) {
			weeks, err := parseRoadmapResponse(text)
			require.NoError(t, err)
			require.Len(t, weeks, 2)

			if baseline == nil {
				baseline = weeks
			} else {
				assert.Equal(t, baseline, weeks)
			}

			assert.Equal(t, "Flutter SDK", weeks[0].Topic)
			assert.Equal(t, 2, weeks[1].Week)
		})
	}
}

func TestParseRoadmapResponse_ObjectWithRoadmapField(t *testing.T) {
	weeks, err := parseRoadmapResponse(`{"roadmap": ` + roadmapArray + `}`)

	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "Firebase", weeks[1].Topic)
}

func TestParseRoadmapResponse_Defaulting(t *testing.T) {
	weeks, err := parseRoadmapResponse(`[
		{"topic": "Git", "description": "Version control."},
		{"topic": "Docker", "description": "Containers."}
	]`)

	require.NoError(t, err)
	require.Len(t, weeks, 2)

	// Missing week numbers default to the 1-based index
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, 2, weeks[1].Week)

	// Missing resources default to an empty list
	assert.NotNil(t, weeks[0].Resources)
	assert.Empty(t, weeks[0].Resources)
}

func TestParseRoadmapResponse_Unparseable(t *testing.T) {
	_, err := parseRoadmapResponse("I am sorry, I cannot help with that.")

	assert.Error(t, err)
}

func TestGenerateRoadmap_NoProviderUsesFallback(t *testing.T) {
	svc := NewRoadmapService(nil, nil)

	weeks, source := svc.GenerateRoadmap(context.Background(), "Flutter Developer", []string{"Flutter SDK", "Firebase"}, []string{"Dart"})

	assert.Equal(t, models.RoadmapSourceFallback, source)
	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, "Flutter SDK", weeks[0].Topic)
	assert.Equal(t, 2, weeks[1].Week)
	assert.Equal(t, "Firebase", weeks[1].Topic)
	assert.Len(t, weeks[0].Resources, 3)
	assert.Equal(t, "https://www.google.com/search?q=Flutter+SDK+tutorial", weeks[0].Link)
}

func TestGenerateRoadmap_FallbackIsDeterministic(t *testing.T) {
	gemini := &stubGemini{textErr: errors.New("quota exceeded")}
	svc := NewRoadmapService(gemini, nil)
	missing := []string{"Docker", "Kubernetes", "Terraform"}

	first, firstSource := svc.GenerateRoadmap(context.Background(), "DevOps Engineer", missing, nil)
	second, secondSource := svc.GenerateRoadmap(context.Background(), "DevOps Engineer", missing, nil)

	assert.Equal(t, models.RoadmapSourceFallback, firstSource)
	assert.Equal(t, firstSource, secondSource)
	assert.Equal(t, first, second)
}

func TestGenerateRoadmap_ProviderErrorUsesFallback(t *testing.T) {
	gemini := &stubGemini{textErr: errors.New("deadline exceeded")}
	svc := NewRoadmapService(gemini, nil)

	weeks, source := svc.GenerateRoadmap(context.Background(), "Backend Developer", []string{"Redis"}, nil)

	assert.Equal(t, models.RoadmapSourceFallback, source)
	require.Len(t, weeks, 1)
	assert.Equal(t, "Redis", weeks[0].Topic)
}

func TestGenerateRoadmap_UnparseableResponseUsesFallback(t *testing.T) {
	gemini := &stubGemini{textResponse: "no JSON here, sorry"}
	svc := NewRoadmapService(gemini, nil)

	weeks, source := svc.GenerateRoadmap(context.Background(), "Backend Developer", []string{"GraphQL"}, nil)

	assert.Equal(t, models.RoadmapSourceFallback, source)
	require.Len(t, weeks, 1)
	assert.Equal(t, 1, gemini.textCalls, "exactly one provider call, no retries")
}

func TestGenerateRoadmap_ProviderOutputPassedThrough(t *testing.T) {
	gemini := &stubGemini{textResponse: "```json\n" + roadmapArray + "\n```"}
	svc := NewRoadmapService(gemini, nil)

	weeks, source := svc.GenerateRoadmap(context.Background(), "Flutter Developer", []string{"Flutter SDK", "Firebase"}, []string{"Dart"})

	assert.Equal(t, models.RoadmapSourceAI, source)
	require.Len(t, weeks, 2)
	assert.Equal(t, "Flutter SDK", weeks[0].Topic)
	assert.Equal(t, "https://docs.flutter.dev", weeks[0].Link)
}

func TestGenerateRoadmap_NoMissingSkillsSingleWeek(t *testing.T) {
	gemini := &stubGemini{textResponse: roadmapArray}
	svc := NewRoadmapService(gemini, nil)

	weeks, _ := svc.GenerateRoadmap(context.Background(), "Flutter Developer", []string{}, []string{"Dart", "Git"})

	require.Len(t, weeks, 1)
	assert.Equal(t, "Advanced Practice & Portfolio Building", weeks[0].Topic)
	assert.Zero(t, gemini.textCalls, "no provider call for an empty skill gap")
}

func TestGenerateRoadmap_FallbackUsesCuratedResources(t *testing.T) {
	gemini := &stubGemini{
		textErr:   errors.New("unavailable"),
		embedding: []float32{0.1, 0.2},
	}
	lib := &stubResourceLib{
		results: []LearningResource{
			{Skill: "Docker", Title: "Docker Getting Started Guide", URL: "https://docs.docker.com/get-started/"},
		},
	}
	svc := NewRoadmapService(gemini, lib)

	weeks, source := svc.GenerateRoadmap(context.Background(), "DevOps Engineer", []string{"Docker"}, nil)

	assert.Equal(t, models.RoadmapSourceFallback, source)
	require.Len(t, weeks, 1)
	assert.Equal(t, []string{"Docker Getting Started Guide (https://docs.docker.com/get-started/)"}, weeks[0].Resources)
}

func TestGenerateRoadmap_ResourceLibraryErrorFallsBackToGeneric(t *testing.T) {
	gemini := &stubGemini{
		textErr:   errors.New("unavailable"),
		embedding: []float32{0.1, 0.2},
	}
	lib := &stubResourceLib{searchErr: errors.New("qdrant down")}
	svc := NewRoadmapService(gemini, lib)

	weeks, _ := svc.GenerateRoadmap(context.Background(), "DevOps Engineer", []string{"Docker"}, nil)

	require.Len(t, weeks, 1)
	assert.Equal(t, genericResources("Docker"), weeks[0].Resources)
}
