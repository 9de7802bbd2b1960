package lists

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_CreateList(t *testing.T) {
	svc := NewService(setupStore(t), zap.NewNop())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "Groceries", 3)
	assert.NoError(t, err)

	_, err = uuid.Parse(list.ID)
	assert.NoError(t, err, "generated ID must be a UUID")
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, 3, list.OrderNumber)
	assert.False(t, list.CreatedAt.IsZero())
	assert.Equal(t, list.CreatedAt, list.ModifiedAt)

	got, err := svc.GetList(ctx, list.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)
}

func TestService_GetLists_Empty(t *testing.T) {
	svc := NewService(setupStore(t), zap.NewNop())

	all, err := svc.GetLists(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, all)
}
