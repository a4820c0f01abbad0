package service

import (
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("incorrect password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Authorizer решает, можно ли выполнять изменяющий запрос с данными claims.
type Authorizer interface {
	Authorize(ctx context.Context, claims model.IdentityClaims) error
}

// AuthResult — ответ успешной аутентификации.
type AuthResult struct {
	UUID  int64
	Token string
}

// AuthService выдаёт токены администратору и проверяет их.
type AuthService struct {
	admins   repo.AdminRepository
	tokens   repo.TokenRepository
	matcher  PasswordMatcher
	newToken func() string
	logger   *zap.SugaredLogger
}

var _ Authorizer = (*AuthService)(nil)

// NewAuthService создаёт сервис. nil matcher означает сравнение открытого текста.
func NewAuthService(admins repo.AdminRepository, tokens repo.TokenRepository, matcher PasswordMatcher, logger *zap.SugaredLogger) *AuthService {
	if matcher == nil {
		matcher = PlainPasswordMatcher
	}
	return &AuthService{
		admins:   admins,
		tokens:   tokens,
		matcher:  matcher,
		newToken: uuid.NewString,
		logger:   logger,
	}
}

// Authenticate проверяет email/пароль и выпускает новый токен.
// Предыдущий токен этого email перестаёт действовать сразу.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if !s.matcher(admin.Password, password) {
		return nil, ErrInvalidPassword
	}

	token := s.newToken()
	if err := s.tokens.Upsert(ctx, &model.TokenRecord{Email: admin.Email, UUID: admin.UUID, Token: token}); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	s.logger.Infow("Admin authenticated", "uuid", admin.UUID)

	return &AuthResult{UUID: admin.UUID, Token: token}, nil
}

// Authorize пропускает запрос, только если пара (uuid, token) совпадает с записью реестра целиком.
func (s *AuthService) Authorize(ctx context.Context, claims model.IdentityClaims) error {
	id, ok := parseClaimedUUID(claims.UUID)
	if !ok || claims.Token == "" {
		return ErrUnauthorized
	}
	exists, err := s.tokens.Exists(ctx, id, claims.Token)
	if err != nil {
		return fmt.Errorf("lookup token: %w", err)
	}
	if !exists {
		return ErrUnauthorized
	}
	return nil
}

// parseClaimedUUID разбирает заголовок uuid. Ноль считается отсутствием значения.
func parseClaimedUUID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// SeedAdmin создаёт администратора, если его ещё нет.
func (s *AuthService) SeedAdmin(ctx context.Context, admin model.Admin) error {
	if admin.Email == "" || admin.Password == "" || admin.UUID == 0 {
		return errors.New("seed admin: email, password and uuid are required")
	}
	created, err := s.admins.CreateIfAbsent(ctx, &admin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		s.logger.Infow("Admin seeded", "uuid", admin.UUID, "email", admin.Email)
	}
	return nil
}
