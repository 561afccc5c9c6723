package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quizapp/models"

	"github.com/redis/go-redis/v9"
)

const quizKeyPrefix = "quiz:"

// QuizCache keeps serialized quizzes in Redis. Quizzes never change after
// creation, so entries only expire through the TTL.
type QuizCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewQuizCache returns a cache over client. A nil client disables caching.
func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{redis: client, ttl: ttl}
}

func (c *QuizCache) enabled() bool {
	return c != nil && c.redis != nil
}

func (c *QuizCache) Get(ctx context.Context, quizID string) (*models.Quiz, bool) {
	if !c.enabled() {
		return nil, false
	}

	data, err := c.redis.Get(ctx, quizKeyPrefix+quizID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting quiz %s: %v", quizID, err)
		}
		return nil, false
	}

	var quiz models.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		log.Printf("Failed to unmarshal cached quiz %s: %v", quizID, err)
		return nil, false
	}
	return &quiz, true
}

func (c *QuizCache) Set(ctx context.Context, quiz *models.Quiz) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz: %w", err)
	}

	if err := c.redis.Set(ctx, quizKeyPrefix+quiz.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store quiz in Redis: %w", err)
	}
	return nil
}
