package services

import (
	"context"
	"fmt"
	"log"

	"pathfinders/internal/models/db_models"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/repositories"
	"pathfinders/pkg/utils"
)

type LibraryServiceInterface interface {
	List(ctx context.Context, premium bool) ([]response_models.LibraryItemResponse, error)
	Get(ctx context.Context, id string, premium bool) (*response_models.LibraryItemResponse, error)
	Related(ctx context.Context, id string) ([]response_models.RelatedItemResponse, error)
	// Reindex recomputes the embedding for every item; run after seeding or
	// editing library content.
	Reindex(ctx context.Context) error
}

type LibraryService struct {
	libraryRepo   repositories.LibraryRepository
	embeddingRepo repositories.ILibraryEmbeddingRepository
	aiClient      utils.CompletionClientInterface // nil disables related-content retrieval
}

func NewLibraryService(
	libraryRepo repositories.LibraryRepository,
	embeddingRepo repositories.ILibraryEmbeddingRepository,
	aiClient utils.CompletionClientInterface,
) LibraryServiceInterface {
	return &LibraryService{
		libraryRepo:   libraryRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

func toItemResponse(item db_models.LibraryItem, premium bool) response_models.LibraryItemResponse {
	resp := response_models.LibraryItemResponse{
		ID:      item.ID.String(),
		Slug:    item.Slug,
		Title:   item.Title,
		Summary: item.Summary,
		Tags:    item.Tags,
		Premium: item.Premium,
	}
	if item.Premium && !premium {
		resp.Body = item.Teaser
		resp.Locked = true
	} else {
		resp.Body = item.Body
	}
	return resp
}

func (l *LibraryService) List(ctx context.Context, premium bool) ([]response_models.LibraryItemResponse, error) {
	items, err := l.libraryRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	responses := make([]response_models.LibraryItemResponse, 0, len(items))
	for _, item := range items {
		resp := toItemResponse(item, premium)
		// Listing never includes bodies; detail view loads them.
		resp.Body = ""
		responses = append(responses, resp)
	}
	return responses, nil
}

func (l *LibraryService) Get(ctx context.Context, id string, premium bool) (*response_models.LibraryItemResponse, error) {
	item, err := l.libraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrLibraryItemNotFound
	}
	resp := toItemResponse(*item, premium)
	return &resp, nil
}

func (l *LibraryService) Related(ctx context.Context, id string) ([]response_models.RelatedItemResponse, error) {
	if l.aiClient == nil {
		return []response_models.RelatedItemResponse{}, nil
	}
	item, err := l.libraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrLibraryItemNotFound
	}

	vector, err := l.aiClient.GetEmbedding(ctx, item.Title+"\n"+item.Summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}

	similar, err := l.embeddingRepo.FindSimilar(vector, item.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(similar) == 0 {
		return []response_models.RelatedItemResponse{}, nil
	}

	// The embedding rows are an index snapshot; serve titles and summaries
	// from the items themselves so edits show up without a reindex.
	ids := make([]string, 0, len(similar))
	for _, s := range similar {
		ids = append(ids, s.ItemID)
	}
	items, err := l.libraryRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[string]db_models.LibraryItem, len(items))
	for _, it := range items {
		byID[it.ID.String()] = it
	}

	responses := make([]response_models.RelatedItemResponse, 0, len(similar))
	for _, s := range similar {
		it, ok := byID[s.ItemID]
		if !ok {
			// Indexed but since deleted.
			continue
		}
		responses = append(responses, response_models.RelatedItemResponse{
			ID:         s.ItemID,
			Slug:       it.Slug,
			Title:      it.Title,
			Summary:    it.Summary,
			Similarity: s.Similarity,
		})
	}
	return responses, nil
}

func (l *LibraryService) Reindex(ctx context.Context) error {
	if l.aiClient == nil {
		return utils.ErrAINotConfigured
	}
	items, err := l.libraryRepo.List(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	for _, item := range items {
		vector, err := l.aiClient.GetEmbedding(ctx, item.Title+"\n"+item.Summary)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
		}
		embedding := db_models.LibraryEmbedding{
			ItemID:    item.ID.String(),
			Title:     item.Title,
			Summary:   item.Summary,
			Tags:      item.Tags,
			Embedding: vector,
		}
		if err := l.embeddingRepo.Upsert(embedding); err != nil {
			return utils.ErrDatabaseError
		}
		log.Printf("reindexed library item %s", item.Slug)
	}
	return nil
}
