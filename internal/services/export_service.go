package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-catalog/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ExportService interface {
	// ExportCatalog writes every movie, fully hydrated, to object storage.
	ExportCatalog(ctx context.Context) (*models.ExportResult, error)
}

type exportService struct {
	movies  MovieService
	storage ObjectStorage
	expiry  time.Duration
	logger  *logrus.Logger
	now     func() time.Time
}

func NewExportService(movies MovieService, storage ObjectStorage, expiry time.Duration, logger *logrus.Logger) ExportService {
	return &exportService{
		movies:  movies,
		storage: storage,
		expiry:  expiry,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) ExportCatalog(ctx context.Context) (*models.ExportResult, error) {
	doc := models.CatalogExport{
		GeneratedAt: s.now(),
		Movies:      []models.MovieFull{},
	}

	perPage := MaxPerPage
	for page := 1; ; page++ {
		resp, err := s.movies.ListMoviesFull(ctx, MovieFullParams{Page: &page, PerPage: &perPage})
		if err != nil {
			return nil, err
		}
		doc.Total = resp.Meta.Total
		doc.Movies = append(doc.Movies, resp.Results...)
		if page >= resp.Meta.LastPage {
			break
		}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog export: %w", err)
	}

	object := fmt.Sprintf("exports/catalog_%s.json", uuid.NewString())
	if err := s.storage.Upload(ctx, object, payload, "application/json"); err != nil {
		return nil, err
	}

	url, err := s.storage.PresignedGetURL(ctx, object, s.expiry)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"object": object,
		"movies": len(doc.Movies),
	}).Info("Catalog exported")

	return &models.ExportResult{
		Object:      object,
		URL:         url,
		Total:       doc.Total,
		GeneratedAt: doc.GeneratedAt,
		ExpiresAt:   doc.GeneratedAt.Add(s.expiry),
	}, nil
}
