package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func Test_SessionRepo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stamps created_at and stores token", func(mt *mtest.T) {
		repo := NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		s := &models.Session{UserID: 3, Token: "tok-1"}
		require.NoError(mt, repo.Create(context.Background(), s))
		assert.False(mt, s.CreatedAt.IsZero())

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
		assert.Equal(mt, SessionsCollection, evt.Command.Lookup("insert").StringValue())
		assert.Equal(mt, "tok-1", evt.Command.Lookup("documents", "0", "token").StringValue())
		assert.EqualValues(mt, 3, evt.Command.Lookup("documents", "0", "user_id").AsInt64())
	})

	mt.Run("duplicate token", func(mt *mtest.T) {
		repo := NewSessionRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: sessions index: token_1",
		}))

		err := repo.Create(context.Background(), &models.Session{UserID: 4, Token: "tok-1"})
		assert.ErrorIs(mt, err, utils.ErrDuplicate)
	})
}

func Test_SessionRepo_GetByToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("hit", func(mt *mtest.T) {
		repo := NewSessionRepo(mt.DB)
		created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		ns := mt.DB.Name() + "." + SessionsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "user_id", Value: int64(7)},
			{Key: "token", Value: "tok-7"},
			{Key: "created_at", Value: created},
		}))

		s, err := repo.GetByToken(context.Background(), "tok-7")
		require.NoError(mt, err)
		assert.EqualValues(mt, 7, s.UserID)
		assert.Equal(mt, "tok-7", s.Token)
		assert.True(mt, created.Equal(s.CreatedAt))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "tok-7", evt.Command.Lookup("filter", "token").StringValue())
	})

	mt.Run("miss", func(mt *mtest.T) {
		repo := NewSessionRepo(mt.DB)
		ns := mt.DB.Name() + "." + SessionsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		s, err := repo.GetByToken(context.Background(), "nope")
		assert.Nil(mt, s)
		assert.ErrorIs(mt, err, utils.ErrNotFound)
	})
}
