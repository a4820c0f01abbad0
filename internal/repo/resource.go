package repo

import (
	"Portfolio/internal/model"
	"context"

	"gorm.io/gorm"
)

// Document — типы, которые хранятся в коллекциях ресурсов.
type Document interface {
	model.Blog | model.Project
}

// ResourceRepository — коллекция документов одного типа (блог или проекты).
type ResourceRepository[T Document] interface {
	Create(ctx context.Context, doc *T) error
	ListAll(ctx context.Context) ([]T, error)
	// GetByID возвращает документ или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*T, error)
	// UpdateByID атомарно заменяет поля и возвращает документ после изменения.
	UpdateByID(ctx context.Context, id string, updates map[string]any) (*T, error)
	// DeleteByID удаляет документ; gorm.ErrRecordNotFound, если удалять нечего.
	DeleteByID(ctx context.Context, id string) error
}

type resourceRepo[T Document] struct {
	db *gorm.DB
}

// NewBlogRepository создаёт коллекцию постов блога.
func NewBlogRepository(db *gorm.DB) ResourceRepository[model.Blog] {
	return &resourceRepo[model.Blog]{db: db}
}

// NewProjectRepository создаёт коллекцию проектов.
func NewProjectRepository(db *gorm.DB) ResourceRepository[model.Project] {
	return &resourceRepo[model.Project]{db: db}
}

func (r *resourceRepo[T]) Create(ctx context.Context, doc *T) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *resourceRepo[T]) ListAll(ctx context.Context) ([]T, error) {
	docs := []T{}
	if err := r.db.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *resourceRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var doc T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *resourceRepo[T]) UpdateByID(ctx context.Context, id string, updates map[string]any) (*T, error) {
	var doc T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&doc).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&doc).Error
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *resourceRepo[T]) DeleteByID(ctx context.Context, id string) error {
	var doc T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&doc)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
