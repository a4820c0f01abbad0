package repo

import (
	"Portfolio/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAdminRepository_CreateIfAbsentAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewAdminRepository(db)
	ctx := context.Background()

	created, err := r.CreateIfAbsent(ctx, &model.Admin{UUID: 1, Email: "a@b.com", Password: "x"})
	assert.NoError(t, err)
	assert.True(t, created)

	// повторное сидирование ничего не меняет
	created, err = r.CreateIfAbsent(ctx, &model.Admin{UUID: 1, Email: "a@b.com", Password: "other"})
	assert.NoError(t, err)
	assert.False(t, created)

	got, err := r.GetByEmail(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.UUID)
	assert.Equal(t, "x", got.Password)

	got, err = r.GetByEmail(ctx, "nobody@b.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
