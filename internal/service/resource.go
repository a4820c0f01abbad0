package service

import (
	"Portfolio/internal/model"
	"Portfolio/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("resource not found")
	ErrMalformedID = errors.New("malformed resource id")
)

// Обязательные поля ресурса.
const (
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
	FieldLink     = "link"
	FieldImage    = "image"
)

// FieldError — не передано обязательное поле.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

// ResourceInput — поля из формы создания/обновления. Image == nil, если файл не приложен.
type ResourceInput struct {
	Title    string
	Subtitle string
	Link     string
	Image    *model.Image
}

type resourceSchema[T repo.Document] struct {
	// порядок проверки обязательных полей
	required []string
	build    func(id string, in ResourceInput) T
	updates  func(in ResourceInput) map[string]any
}

// ResourceService — жизненный цикл документов одной коллекции:
// проверка полей, авторизация, затем обращение к репозиторию.
type ResourceService[T repo.Document] struct {
	repo   repo.ResourceRepository[T]
	auth   Authorizer
	schema resourceSchema[T]
	logger *zap.SugaredLogger
}

// NewBlogService создаёт сервис постов блога.
func NewBlogService(r repo.ResourceRepository[model.Blog], auth Authorizer, logger *zap.SugaredLogger) *ResourceService[model.Blog] {
	return &ResourceService[model.Blog]{
		repo:   r,
		auth:   auth,
		logger: logger,
		schema: resourceSchema[model.Blog]{
			required: []string{FieldTitle, FieldSubtitle, FieldLink, FieldImage},
			build: func(id string, in ResourceInput) model.Blog {
				return model.Blog{ID: id, Title: in.Title, Subtitle: in.Subtitle, Link: in.Link, Image: *in.Image}
			},
			updates: func(in ResourceInput) map[string]any {
				return withImage(map[string]any{
					"title":    in.Title,
					"subtitle": in.Subtitle,
					"link":     in.Link,
				}, in.Image)
			},
		},
	}
}

// NewProjectService создаёт сервис проектов.
func NewProjectService(r repo.ResourceRepository[model.Project], auth Authorizer, logger *zap.SugaredLogger) *ResourceService[model.Project] {
	return &ResourceService[model.Project]{
		repo:   r,
		auth:   auth,
		logger: logger,
		schema: resourceSchema[model.Project]{
			required: []string{FieldTitle, FieldLink, FieldImage},
			build: func(id string, in ResourceInput) model.Project {
				return model.Project{ID: id, Title: in.Title, Link: in.Link, Image: *in.Image}
			},
			updates: func(in ResourceInput) map[string]any {
				return withImage(map[string]any{
					"title": in.Title,
					"link":  in.Link,
				}, in.Image)
			},
		},
	}
}

func withImage(fields map[string]any, img *model.Image) map[string]any {
	if img != nil {
		fields["image_data"] = img.Data
		fields["image_content_type"] = img.ContentType
	}
	return fields
}

// Create проверяет поля и права, сохраняет документ и возвращает его id.
func (s *ResourceService[T]) Create(ctx context.Context, in ResourceInput, claims model.IdentityClaims) (string, error) {
	if err := s.validate(in); err != nil {
		return "", err
	}
	if err := s.authorize(ctx, claims); err != nil {
		return "", err
	}

	id := uuid.NewString()
	doc := s.schema.build(id, in)
	if err := s.repo.Create(ctx, &doc); err != nil {
		return "", fmt.Errorf("create: %w", err)
	}
	s.logger.Infow("Resource created", "id", id)
	return id, nil
}

// List возвращает все документы коллекции без фильтрации.
func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	docs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return docs, nil
}

// Get возвращает документ по id. Чтение публичное, авторизации нет.
func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.GetByID(ctx, key)
	if err != nil {
		return nil, notFoundOr(err, "get")
	}
	return doc, nil
}

// Update полностью заменяет текстовые поля; картинка меняется, только если передана новая.
// Картинка при этом обязательна так же, как при создании.
func (s *ResourceService[T]) Update(ctx context.Context, id string, in ResourceInput, claims model.IdentityClaims) (*T, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, claims); err != nil {
		return nil, err
	}
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.UpdateByID(ctx, key, s.schema.updates(in))
	if err != nil {
		return nil, notFoundOr(err, "update")
	}
	s.logger.Infow("Resource updated", "id", key)
	return doc, nil
}

// Delete удаляет документ. Повторное удаление вернёт ErrNotFound.
func (s *ResourceService[T]) Delete(ctx context.Context, id string, claims model.IdentityClaims) error {
	if err := s.authorize(ctx, claims); err != nil {
		return err
	}
	key, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, key); err != nil {
		return notFoundOr(err, "delete")
	}
	s.logger.Infow("Resource deleted", "id", key)
	return nil
}

func (s *ResourceService[T]) validate(in ResourceInput) error {
	for _, f := range s.schema.required {
		var missing bool
		switch f {
		case FieldTitle:
			missing = in.Title == ""
		case FieldSubtitle:
			missing = in.Subtitle == ""
		case FieldLink:
			missing = in.Link == ""
		case FieldImage:
			missing = in.Image == nil
		}
		if missing {
			return &FieldError{Field: f}
		}
	}
	return nil
}

func (s *ResourceService[T]) authorize(ctx context.Context, claims model.IdentityClaims) error {
	err := s.auth.Authorize(ctx, claims)
	if err == nil || errors.Is(err, ErrUnauthorized) {
		return err
	}
	return fmt.Errorf("authorize: %w", err)
}

// parseID приводит id к канонической форме UUID.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return u.String(), nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
