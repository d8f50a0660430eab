package impl

import (
	"context"
	"io"
	"log/slog"

	"cardmatch/internal/domain/repository"
	mockRepo "cardmatch/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepositoryFactory hands out the mocked repositories inside a
// transaction callback.
type stubRepositoryFactory struct {
	userRepo  *mockRepo.UserRepository
	offerRepo *mockRepo.OfferRepository
}

func (f *stubRepositoryFactory) UserRepo() repository.UserRepository   { return f.userRepo }
func (f *stubRepositoryFactory) OfferRepo() repository.OfferRepository { return f.offerRepo }

// stubTransactionManager runs the callback immediately without a real
// database transaction.
type stubTransactionManager struct {
	factory *stubRepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
