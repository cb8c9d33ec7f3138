package service

import (
	"context"
	"time"

	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/unitofwork"
	"ai-health-be/pkg/diagnosis"

	gocache "github.com/patrickmn/go-cache"
)

const (
	mappingCacheKey = "symptom_mappings"
	mappingCacheTTL = 5 * time.Minute
)

type IMappingCatalog interface {
	Mappings(ctx context.Context) []diagnosis.Mapping
	SymptomVocabulary(ctx context.Context) []string
}

// mappingCatalog serves the static symptom-to-disease store to the extractor
// and the predictor. The table is tiny and changes rarely, so rows are cached
// in memory and refreshed on expiry. A failed refresh yields an empty catalog
// for this call; downstream components treat that as "no mapping matched".
type mappingCatalog struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	log        logger.ILogger
}

func NewMappingCatalog(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMappingCatalog {
	return &mappingCatalog{
		uowFactory: uowFactory,
		cache:      gocache.New(mappingCacheTTL, 10*time.Minute),
		log:        log,
	}
}

func (c *mappingCatalog) Mappings(ctx context.Context) []diagnosis.Mapping {
	if cached, ok := c.cache.Get(mappingCacheKey); ok {
		return cached.([]diagnosis.Mapping)
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.SymptomMappingRepository().FindAll(ctx)
	if err != nil {
		c.log.Warn("mapping_catalog", "mapping store unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}

	mappings := make([]diagnosis.Mapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, diagnosis.Mapping{
			Disease:  row.Disease,
			Symptoms: row.Symptoms,
		})
	}

	c.cache.Set(mappingCacheKey, mappings, gocache.DefaultExpiration)
	return mappings
}

func (c *mappingCatalog) SymptomVocabulary(ctx context.Context) []string {
	var vocabulary []string
	seen := make(map[string]bool)

	for _, mapping := range c.Mappings(ctx) {
		for _, symptom := range mapping.Symptoms {
			if symptom == "" || seen[symptom] {
				continue
			}
			vocabulary = append(vocabulary, symptom)
			seen[symptom] = true
		}
	}
	return vocabulary
}
