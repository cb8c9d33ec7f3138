package service

import (
	"context"
	"errors"
	"testing"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user  *entity.User
	err   error
	calls int
}

func (r *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *stubUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func (r *stubUserRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.User, error) {
	r.calls++
	return r.user, r.err
}

func newTestLanguageResolver(repo *stubUserRepo) ILanguageResolver {
	return NewLanguageResolver(&stubFactory{uow: &stubUnitOfWork{users: repo}}, logger.NewNopLogger())
}

func TestResolveRequestLanguageWins(t *testing.T) {
	repo := &stubUserRepo{user: &entity.User{PreferredLanguage: "hi"}}
	resolver := newTestLanguageResolver(repo)
	userId := uuid.New()

	require.Equal(t, "te", resolver.Resolve(context.Background(), &userId, "te"))
	require.Zero(t, repo.calls)
}

func TestResolveAnonymousDefaultsToEnglish(t *testing.T) {
	resolver := newTestLanguageResolver(&stubUserRepo{})

	require.Equal(t, "en", resolver.Resolve(context.Background(), nil, ""))
	require.Equal(t, "en", resolver.Resolve(context.Background(), nil, "fr"))
}

func TestResolveUsesStoredPreference(t *testing.T) {
	repo := &stubUserRepo{user: &entity.User{PreferredLanguage: "hi"}}
	resolver := newTestLanguageResolver(repo)
	userId := uuid.New()

	require.Equal(t, "hi", resolver.Resolve(context.Background(), &userId, ""))

	// Second resolve is served from the cache.
	require.Equal(t, "hi", resolver.Resolve(context.Background(), &userId, ""))
	require.Equal(t, 1, repo.calls)
}

func TestResolveUnsupportedPreferenceDefaults(t *testing.T) {
	repo := &stubUserRepo{user: &entity.User{PreferredLanguage: "fr"}}
	resolver := newTestLanguageResolver(repo)
	userId := uuid.New()

	require.Equal(t, "en", resolver.Resolve(context.Background(), &userId, ""))
}

func TestResolveLookupFailureDefaults(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection refused")}
	resolver := newTestLanguageResolver(repo)
	userId := uuid.New()

	require.Equal(t, "en", resolver.Resolve(context.Background(), &userId, ""))

	// Failures are not cached; the next call retries the store.
	resolver.Resolve(context.Background(), &userId, "")
	require.Equal(t, 2, repo.calls)
}
