package handlers_test

import (
	"context"
	"time"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/domain"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func userResult(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return userResult(m.Called(ctx, userID))
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	return userResult(m.Called(ctx, req))
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	return userResult(m.Called(ctx, userID, req))
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	return userResult(m.Called(ctx, email, password))
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func journalResult(args mock.Arguments) (*domain.MonthlyJournal, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyJournal), args.Error(1)
}

func (m *MockJournalService) GetMonth(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyJournal, domain.JournalSummary, error) {
	args := m.Called(ctx, userID, month)
	var journal *domain.MonthlyJournal
	if args.Get(0) != nil {
		journal = args.Get(0).(*domain.MonthlyJournal)
	}
	return journal, args.Get(1).(domain.JournalSummary), args.Error(2)
}

func (m *MockJournalService) AddEntry(ctx context.Context, userID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, req))
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.JournalEntryRequest) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, entryID, req))
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, userID string, entryID string) (*domain.MonthlyJournal, error) {
	return journalResult(m.Called(ctx, userID, entryID))
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) MonthlyReport(ctx context.Context, userID string, month domain.MonthYear) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

func (m *MockReportingService) GenerateJournalPDF(ctx context.Context, userID string, month domain.MonthYear) ([]byte, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
