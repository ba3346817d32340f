package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSkillExtractor_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/extract-skills", r.URL.Path)

		var req extractSkillsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Flutter Developer", req.JobTitle)

		_ = json.NewEncoder(w).Encode(extractSkillsResponse{
			Success:  true,
			JobTitle: req.JobTitle,
			Skills:   []string{"Dart", "Flutter SDK", "Git", "Firebase"},
			Count:    4,
		})
	}))
	defer server.Close()

	extractor := NewHTTPSkillExtractor(server.URL, 5*time.Second)

	skills, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")

	require.NoError(t, err)
	assert.Equal(t, []string{"Dart", "Flutter SDK", "Git", "Firebase"}, skills)
}

func TestHTTPSkillExtractor_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	extractor := NewHTTPSkillExtractor(server.URL, 5*time.Second)

	_, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}

func TestHTTPSkillExtractor_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(extractSkillsResponse{
			Success: false,
			Error:   "model not loaded",
		})
	}))
	defer server.Close()

	extractor := NewHTTPSkillExtractor(server.URL, 5*time.Second)

	_, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestHTTPSkillExtractor_ConnectionRefused(t *testing.T) {
	// Reserve then close a port so nothing is listening on it
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	extractor := NewHTTPSkillExtractor(url, time.Second)

	_, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")

	assert.Error(t, err)
}

func TestMockSkillExtractor(t *testing.T) {
	extractor := NewMockSkillExtractor()

	tests := []struct {
		name          string
		jobTitle      string
		expectedFirst string
	}{
		{name: "known title", jobTitle: "Flutter Developer", expectedFirst: "Dart"},
		{name: "case and padding insensitive", jobTitle: "  FLUTTER developer ", expectedFirst: "Dart"},
		{name: "unknown title falls back to default", jobTitle: "Astronaut", expectedFirst: "Python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills, err := extractor.ExtractSkills(context.Background(), tt.jobTitle)

			require.NoError(t, err)
			require.NotEmpty(t, skills)
			assert.Equal(t, tt.expectedFirst, skills[0])
			assert.Len(t, skills, 10)
		})
	}
}

func TestMockSkillExtractor_ReturnsCopy(t *testing.T) {
	extractor := NewMockSkillExtractor()

	first, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")
	require.NoError(t, err)

	first[0] = "mutated"

	second, err := extractor.ExtractSkills(context.Background(), "Flutter Developer")
	require.NoError(t, err)
	assert.Equal(t, "Dart", second[0])
}
