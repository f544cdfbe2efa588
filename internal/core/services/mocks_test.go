package services_test

import (
	"context"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID string, profile domain.UserProfile, updatedAt time.Time) (*domain.User, error) {
	args := m.Called(ctx, userID, profile, updatedAt)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func journalResult(args mock.Arguments) (*domain.MonthlyJournal, error) {
	var journal *domain.MonthlyJournal
	if args.Get(0) != nil {
		journal = args.Get(0).(*domain.MonthlyJournal)
	}
	return journal, args.Error(1)
}

func (m *MockJournalRepository) FindJournalByMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, month))
}

func (m *MockJournalRepository) EnsureJournalAndAppendEntry(ctx context.Context, draft domain.MonthlyJournal, entry domain.JournalEntry) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, draft, entry))
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, userID string, update domain.EntryUpdate) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, update))
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, entryID))
}

func strPtr(s string) *string { return &s }
