package service

import (
	"context"
	"time"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const languageCacheTTL = 5 * time.Minute

// ILanguageResolver picks the language every prompt builder uses for one
// request. An explicit supported language in the request wins; otherwise a
// logged-in caller's stored preference applies; everything else is English.
type ILanguageResolver interface {
	Resolve(ctx context.Context, userId *uuid.UUID, requested string) string
}

type languageResolver struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	log        logger.ILogger
}

func NewLanguageResolver(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ILanguageResolver {
	return &languageResolver{
		uowFactory: uowFactory,
		cache:      gocache.New(languageCacheTTL, 10*time.Minute),
		log:        log,
	}
}

func (r *languageResolver) Resolve(ctx context.Context, userId *uuid.UUID, requested string) string {
	if constant.IsSupportedLanguage(requested) {
		return requested
	}
	if userId == nil {
		return constant.DefaultLanguage
	}

	key := userId.String()
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string)
	}

	lang := constant.DefaultLanguage
	uow := r.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
	if err != nil {
		// Preference lookup failing just means English; not worth caching.
		r.log.Warn("language", "preference lookup failed", map[string]interface{}{"error": err.Error()})
		return lang
	}
	if user != nil && constant.IsSupportedLanguage(user.PreferredLanguage) {
		lang = user.PreferredLanguage
	}

	r.cache.Set(key, lang, gocache.DefaultExpiration)
	return lang
}
