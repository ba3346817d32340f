package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"forwardai/skill-gap-analyzer/internal/services"
)

type ResumeHandler struct {
	analyzer     services.AnalyzerService
	storage      services.StorageService
	resumeParser services.ResumeParserService
	maxFileSize  int64
}

func NewResumeHandler(
	analyzer services.AnalyzerService,
	storage services.StorageService,
	resumeParser services.ResumeParserService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		analyzer:     analyzer,
		storage:      storage,
		resumeParser: resumeParser,
		maxFileSize:  maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /api/analyze-resume. Expects a multipart
// form with a 'resume' PDF and a 'job_title' field.
func (h *ResumeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	jobTitle := c.FormValue("job_title")

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume PDF file is required ('resume' form field)",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	// The file is only needed for text extraction
	defer func() {
		if err := h.storage.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up resume file %s: %v\n", filename, err)
		}
	}()

	resumeText, err := h.resumeParser.ExtractText(filePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("could not read resume PDF: %v", err),
		})
	}

	result, err := h.analyzer.AnalyzeResume(c.Context(), jobTitle, resumeText)
	if err != nil {
		return respondAnalysisError(c, err)
	}

	return c.JSON(result)
}
