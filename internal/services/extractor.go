package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// SkillExtractorService maps a job title to a list of in-demand skill
// strings. The real implementation talks to the Forward AI data
// microservice; the mock implementation keeps the demo working without it.
type SkillExtractorService interface {
	ExtractSkills(ctx context.Context, jobTitle string) ([]string, error)
}

type httpSkillExtractor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSkillExtractor creates an extractor backed by the data
// microservice at baseURL. The timeout must cover slow NLP processing.
func NewHTTPSkillExtractor(baseURL string, timeout time.Duration) SkillExtractorService {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &httpSkillExtractor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type extractSkillsRequest struct {
	JobTitle string `json:"job_title"`
}

type extractSkillsResponse struct {
	Success  bool     `json:"success"`
	JobTitle string   `json:"job_title"`
	Skills   []string `json:"skills"`
	Count    int      `json:"count"`
	Error    string   `json:"error"`
}

// ExtractSkills implements SkillExtractorService.
func (e *httpSkillExtractor) ExtractSkills(ctx context.Context, jobTitle string) ([]string, error) {
	payload, err := json.Marshal(extractSkillsRequest{JobTitle: jobTitle})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := e.baseURL + "/extract-skills"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("data service request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("data service returned http %d", res.StatusCode)
	}

	var body extractSkillsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode data service response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("data service error: %s", body.Error)
	}

	return body.Skills, nil
}

// mockMarketSkills mirrors the data service's curated mock job data, keyed by
// lowercase job title with a "default" fallback. It keeps the demo working
// when the data service is not running.
var mockMarketSkills = map[string][]string{
	"default": {
		"Python", "JavaScript", "React", "Node.js", "SQL",
		"Docker", "Git", "REST APIs", "Agile", "CI/CD",
	},
	"flutter developer": {
		"Dart", "Flutter SDK", "Firebase", "Bloc", "REST API Integration",
		"Git", "Responsive UI Design", "Clean Architecture", "Unit Testing", "CI/CD",
	},
	"data scientist": {
		"Python", "Pandas", "NumPy", "Scikit-learn", "TensorFlow",
		"SQL", "Data Visualization", "Statistical Analysis", "Machine Learning", "NLP",
	},
	"backend developer": {
		"Node.js", "Express", "PostgreSQL", "MongoDB", "Redis",
		"Docker", "Kubernetes", "REST API Design", "GraphQL", "Microservices",
	},
	"frontend developer": {
		"React.js", "TypeScript", "HTML5", "CSS3", "Tailwind CSS",
		"Next.js", "Redux", "Responsive Design", "Git", "Accessibility",
	},
	"devops engineer": {
		"Docker", "Kubernetes", "Terraform", "CI/CD", "AWS",
		"Linux", "Bash Scripting", "Prometheus", "Grafana", "Infrastructure as Code",
	},
}

type mockSkillExtractor struct{}

// NewMockSkillExtractor creates the demo-mode extractor used when no data
// service URL is configured.
func NewMockSkillExtractor() SkillExtractorService {
	return &mockSkillExtractor{}
}

// ExtractSkills implements SkillExtractorService.
func (e *mockSkillExtractor) ExtractSkills(ctx context.Context, jobTitle string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(jobTitle))
	skills, ok := mockMarketSkills[key]
	if !ok {
		skills = mockMarketSkills["default"]
	}

	log.Printf("📦 Using mock market skills for %q (%d skills)\n", jobTitle, len(skills))

	// Copy so callers can't mutate the curated lists.
	out := make([]string, len(skills))
	copy(out, skills)
	return out, nil
}
