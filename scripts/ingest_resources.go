package main

import (
	"context"
	"log"

	"forwardai/skill-gap-analyzer/internal/config"
	"forwardai/skill-gap-analyzer/internal/services"
)

func main() {
	log.Println("🚀 Starting resource ingestion...")

	// Load configuration
	cfg := config.Load()

	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required for embedding resources")
	}
	if cfg.Qdrant.URL == "" {
		log.Fatal("❌ QDRANT_URL is required for resource ingestion")
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	resourceLib, err := services.NewResourceLibraryService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := resourceLib.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	promptBuilder := services.NewPromptBuilder()
	ctx := context.Background()

	resources := []services.LearningResource{
		{Skill: "Dart", Title: "Dart Language Tour", URL: "https://dart.dev/language"},
		{Skill: "Flutter SDK", Title: "Flutter Official Codelabs", URL: "https://docs.flutter.dev/codelabs"},
		{Skill: "Firebase", Title: "Firebase for Flutter Codelab", URL: "https://firebase.google.com/codelabs/firebase-get-to-know-flutter"},
		{Skill: "Bloc", Title: "Bloc State Management Library Docs", URL: "https://bloclibrary.dev"},
		{Skill: "Git", Title: "Pro Git Book", URL: "https://git-scm.com/book"},
		{Skill: "Docker", Title: "Docker Getting Started Guide", URL: "https://docs.docker.com/get-started/"},
		{Skill: "Kubernetes", Title: "Kubernetes Basics Tutorial", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/"},
		{Skill: "Python", Title: "The Official Python Tutorial", URL: "https://docs.python.org/3/tutorial/"},
		{Skill: "SQL", Title: "SQLBolt Interactive Lessons", URL: "https://sqlbolt.com"},
		{Skill: "React", Title: "React Official Learn Course", URL: "https://react.dev/learn"},
		{Skill: "Node.js", Title: "Node.js Guides", URL: "https://nodejs.org/en/learn"},
		{Skill: "TypeScript", Title: "TypeScript Handbook", URL: "https://www.typescriptlang.org/docs/handbook/intro.html"},
		{Skill: "REST APIs", Title: "REST API Tutorial", URL: "https://restfulapi.net"},
		{Skill: "CI/CD", Title: "GitHub Actions Quickstart", URL: "https://docs.github.com/en/actions/quickstart"},
		{Skill: "Machine Learning", Title: "Google Machine Learning Crash Course", URL: "https://developers.google.com/machine-learning/crash-course"},
		{Skill: "TensorFlow", Title: "TensorFlow Beginner Tutorials", URL: "https://www.tensorflow.org/tutorials"},
		{Skill: "Terraform", Title: "Terraform Getting Started", URL: "https://developer.hashicorp.com/terraform/tutorials"},
		{Skill: "AWS", Title: "AWS Cloud Practitioner Essentials", URL: "https://aws.amazon.com/training/learn-about/cloud-practitioner/"},
	}

	successCount := 0
	failCount := 0

	for _, resource := range resources {
		log.Printf("📚 Ingesting: %s (%s)", resource.Title, resource.Skill)

		query := promptBuilder.BuildResourceQuery(resource.Skill)
		embedding, err := geminiService.GenerateEmbedding(ctx, query)
		if err != nil {
			log.Printf("❌ Failed to embed %s: %v", resource.Skill, err)
			failCount++
			continue
		}

		if err := resourceLib.UpsertResource(ctx, resource, embedding); err != nil {
			log.Printf("❌ Failed to upsert %s: %v", resource.Title, err)
			failCount++
			continue
		}

		successCount++
	}

	log.Printf("✅ Ingestion complete: %d succeeded, %d failed\n", successCount, failCount)
}
