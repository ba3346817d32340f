package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildRoadmapPrompt creates the prompt for learning roadmap generation.
func (pb *PromptBuilder) BuildRoadmapPrompt(jobTitle string, missingSkills, knownSkills []string) string {
	known := "none"
	if len(knownSkills) > 0 {
		known = strings.Join(knownSkills, ", ")
	}

	return fmt.Sprintf(`You are an expert career coach creating a learning roadmap for someone who wants to become a %s.

SKILLS THEY ALREADY HAVE:
%s

SKILLS THEY NEED TO LEARN:
%s

Create a weekly learning roadmap that covers ALL the missing skills across 4-6 weeks, ordered so that prerequisite skills come first.

Return your response as a JSON array in exactly this format:
[
  {
    "week": 1,
    "topic": "<skill or topic name>",
    "description": "<2-3 sentence description of what to learn and why>",
    "resources": ["<resource 1>", "<resource 2>", "<resource 3>"],
    "link": "<one URL to a high-quality free resource>"
  }
]

Rules:
- "week" is a positive integer starting at 1
- "resources" is an array of 2-3 strings
- cover every missing skill in some week
- return ONLY the JSON array, no prose before or after it`,
		jobTitle, known, strings.Join(missingSkills, ", "))
}

// BuildResourceQuery creates the similarity-search query for the learning
// resource library.
func (pb *PromptBuilder) BuildResourceQuery(skill string) string {
	return fmt.Sprintf("Beginner-friendly learning resources and tutorials for %s", skill)
}
