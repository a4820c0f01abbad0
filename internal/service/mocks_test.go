package service

import (
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.AdminRepository
type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if a, ok := args.Get(0).(*model.Admin); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdminRepo) CreateIfAbsent(ctx context.Context, admin *model.Admin) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}

var _ repo.AdminRepository = (*mockAdminRepo)(nil)

// мок для repo.TokenRepository
type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Upsert(ctx context.Context, rec *model.TokenRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockTokenRepo) Exists(ctx context.Context, uuid int64, token string) (bool, error) {
	args := m.Called(ctx, uuid, token)
	return args.Bool(0), args.Error(1)
}

var _ repo.TokenRepository = (*mockTokenRepo)(nil)

// мок для repo.ResourceRepository[model.Blog]
type mockBlogRepo struct{ mock.Mock }

func (m *mockBlogRepo) Create(ctx context.Context, doc *model.Blog) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockBlogRepo) ListAll(ctx context.Context) ([]model.Blog, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Blog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogRepo) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Blog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogRepo) UpdateByID(ctx context.Context, id string, updates map[string]any) (*model.Blog, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Blog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlogRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ResourceRepository[model.Blog] = (*mockBlogRepo)(nil)

// мок для Authorizer
type mockAuthorizer struct{ mock.Mock }

func (m *mockAuthorizer) Authorize(ctx context.Context, claims model.IdentityClaims) error {
	return m.Called(ctx, claims).Error(0)
}

var _ Authorizer = (*mockAuthorizer)(nil)
