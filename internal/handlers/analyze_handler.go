package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"forwardai/skill-gap-analyzer/internal/models"
	"forwardai/skill-gap-analyzer/internal/services"
)

// exampleAnalyzePayload is returned with every validation error so the
// mobile team can see a working request shape.
var exampleAnalyzePayload = fiber.Map{
	"jobTitle":   "Flutter Developer",
	"userSkills": []string{"Dart", "Git"},
}

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /api/analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request payload",
			"example": exampleAnalyzePayload,
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), req)
	if err != nil {
		return respondAnalysisError(c, err)
	}

	return c.JSON(result)
}

// respondAnalysisError maps the pipeline's error taxonomy onto HTTP status
// classes: invalid input is the client's fault, an extractor failure is an
// upstream server error.
func respondAnalysisError(c *fiber.Ctx, err error) error {
	var invalidInput *services.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   invalidInput.Message,
			"example": exampleAnalyzePayload,
		})
	}

	var upstream *services.UpstreamFailureError
	if errors.As(err, &upstream) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": upstream.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Analysis failed unexpectedly",
	})
}
