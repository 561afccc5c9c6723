package services

import (
	"context"
	"testing"
	"time"

	"quizapp/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*QuizCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewQuizCache(client, 5*time.Minute), mr
}

func TestQuizCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	q := models.NewQuestion("Capital of India?", 2, models.ShortText{ReferenceAnswer: "New Delhi"})
	q.ID = "q-1"
	quiz := &models.Quiz{ID: "quiz-1", Title: "Geo", Questions: []models.Question{q}}

	_, ok := cache.Get(ctx, "quiz-1")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, quiz))
	assert.Equal(t, 5*time.Minute, mr.TTL(quizKeyPrefix+"quiz-1"))

	got, ok := cache.Get(ctx, "quiz-1")
	require.True(t, ok)
	assert.Equal(t, "Geo", got.Title)
	require.Len(t, got.Questions, 1)

	v, err := got.Questions[0].Variant()
	require.NoError(t, err)
	assert.Equal(t, models.ShortText{ReferenceAnswer: "New Delhi"}, v)
	assert.Equal(t, 2, got.Questions[0].Marks)
}

func TestQuizCacheCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set(quizKeyPrefix+"broken", "{not json"))

	_, ok := cache.Get(context.Background(), "broken")
	assert.False(t, ok)
}

func TestQuizCacheUnavailable(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.SetError("ERR forced failure")

	_, ok := cache.Get(context.Background(), "quiz-1")
	assert.False(t, ok)
	assert.Error(t, cache.Set(context.Background(), &models.Quiz{ID: "quiz-1"}))
}

func TestQuizCacheDisabled(t *testing.T) {
	var nilCache *QuizCache
	_, ok := nilCache.Get(context.Background(), "x")
	assert.False(t, ok)
	assert.NoError(t, nilCache.Set(context.Background(), &models.Quiz{ID: "x"}))

	noClient := NewQuizCache(nil, time.Minute)
	_, ok = noClient.Get(context.Background(), "x")
	assert.False(t, ok)
	assert.NoError(t, noClient.Set(context.Background(), &models.Quiz{ID: "x"}))
}
