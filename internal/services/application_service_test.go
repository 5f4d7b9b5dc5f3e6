package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/utils"
)

func Test_ApplicationService_Lifecycle(t *testing.T) {
	svc := NewApplicationService(gormrepo.NewApplicationRepo(newTestDB(t)), quietLogger())
	ctx := context.Background()

	anonID, err := svc.Create(ctx, Actor{}, &models.Application{})
	require.NoError(t, err)
	assert.NotZero(t, anonID)

	ownID, err := svc.Create(ctx, Actor{UserID: uintPtr(2)}, &models.Application{Name: "Garden help", Price: "3000"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListMine(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Garden help", mine[0].Name)

	err = svc.Update(ctx, Actor{UserID: uintPtr(2)}, anonID, &models.Application{Name: "x"})
	assert.True(t, utils.IsCode(err, utils.CodeForbidden))

	require.NoError(t, svc.Update(ctx, Actor{UserID: uintPtr(2)}, ownID, &models.Application{Name: "Garden work"}))
	got, err := svc.Get(ctx, ownID)
	require.NoError(t, err)
	assert.Equal(t, "Garden work", got.Name)

	require.NoError(t, svc.Delete(ctx, Actor{IsAdmin: true}, anonID))
	_, err = svc.Get(ctx, anonID)
	assert.Equal(t, "Application not found", utils.ClientMessage(err))
}
