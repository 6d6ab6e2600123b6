package impl

import (
	"context"

	"resumebuilder/internal/domain/entity"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error) {
	args := m.Called(ctx, id)
	if resume, ok := args.Get(0).(*entity.Resume); ok {
		return resume, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockResumeRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Resume, error) {
	args := m.Called(ctx, ownerEmail)
	if resumes, ok := args.Get(0).([]*entity.Resume); ok {
		return resumes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockResumeRepository) Create(ctx context.Context, resume *entity.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepository) Update(ctx context.Context, resume *entity.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- Service mocks ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(raw string) (*service.Claims, error) {
	args := m.Called(raw)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderResume(resume *entity.Resume) ([]byte, error) {
	args := m.Called(resume)
	if content, ok := args.Get(0).([]byte); ok {
		return content, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, htmlBody string, attachments ...service.EmailAttachment) error {
	return m.Called(ctx, to, subject, htmlBody, attachments).Error(0)
}

type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateShareQR(resumeID uuid.UUID) ([]byte, error) {
	args := m.Called(resumeID)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

// --- Transaction plumbing ---

// fakeRepoFactory hands the test's mock repositories to transactional callbacks.
type fakeRepoFactory struct {
	users   repository.UserRepository
	resumes repository.ResumeRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *fakeRepoFactory) ResumeRepo() repository.ResumeRepository {
	return f.resumes
}

// fakeTxManager runs the callback immediately with the fake factory,
// standing in for a real database transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func newFakeTxManager(users repository.UserRepository, resumes repository.ResumeRepository) *fakeTxManager {
	return &fakeTxManager{factory: &fakeRepoFactory{users: users, resumes: resumes}}
}

func (tm *fakeTxManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}
