package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const historyKey = "games:history"

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]*entity.GameRecord, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(record.ID), recordJSON, 0)
		pipe.LPush(ctx, historyKey, record.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameRecord{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return &entity.GameRecord{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

// ListRecent returns up to limit records, newest first.
func (that *dbGame) ListRecent(ctx context.Context, limit int64) ([]*entity.GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, historyKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game history: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(ids))
	for _, id := range ids {
		record, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrGameNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func gameKey(id string) string {
	return "game:" + id
}
