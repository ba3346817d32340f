package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// ResourceLibraryService is the curated learning-resource store. Fallback
// roadmaps use it to replace generic resource templates with real links.
type ResourceLibraryService interface {
	InitCollection() error
	UpsertResource(ctx context.Context, resource LearningResource, embedding []float32) error
	SearchResources(ctx context.Context, queryEmbedding []float32, limit int) ([]LearningResource, error)
}

type LearningResource struct {
	Skill string
	Title string
	URL   string
}

type resourceLibraryService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewResourceLibraryService(urlStr, apiKey, collectionName string) (ResourceLibraryService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &resourceLibraryService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements ResourceLibraryService.
func (r *resourceLibraryService) InitCollection() error {
	ctx := context.Background()

	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Resource collection already exists")
		return nil
	}

	err = r.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: r.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     r.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", r.collectionName)
	return nil
}

// UpsertResource implements ResourceLibraryService.
func (r *resourceLibraryService) UpsertResource(ctx context.Context, resource LearningResource, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"skill": resource.Skill,
			"title": resource.Title,
			"url":   resource.URL,
		}),
	}

	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resource: %w", err)
	}

	return nil
}

// SearchResources implements ResourceLibraryService.
func (r *resourceLibraryService) SearchResources(ctx context.Context, queryEmbedding []float32, limit int) ([]LearningResource, error) {
	searchResult, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search resources: %w", err)
	}

	var resources []LearningResource
	for _, point := range searchResult {
		payload := point.Payload

		var resource LearningResource
		if skill, ok := payload["skill"]; ok {
			if val, ok := skill.GetKind().(*qdrant.Value_StringValue); ok {
				resource.Skill = val.StringValue
			}
		}
		if title, ok := payload["title"]; ok {
			if val, ok := title.GetKind().(*qdrant.Value_StringValue); ok {
				resource.Title = val.StringValue
			}
		}
		if u, ok := payload["url"]; ok {
			if val, ok := u.GetKind().(*qdrant.Value_StringValue); ok {
				resource.URL = val.StringValue
			}
		}

		resources = append(resources, resource)
	}

	return resources, nil
}
