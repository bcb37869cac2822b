package repository

import (
	"collaband/CollaBand/internal/api/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ChatRepository defines the interface for chat data operations.
type ChatRepository interface {
	GetOrCreate(ctx context.Context, initiatorID int64) (*models.Chat, error)
}

type sqliteChatRepository struct {
	db *sqlx.DB
}

// NewChatRepository creates a new SQLite-based ChatRepository.
func NewChatRepository(db *sqlx.DB) ChatRepository {
	return &sqliteChatRepository{db: db}
}

// GetOrCreate returns the chat initiated by initiatorID, inserting it first
// if it does not exist. The UNIQUE constraint on initiator_id makes the
// insert fail for the loser of a concurrent first access, in which case the
// winner's row is re-read.
func (r *sqliteChatRepository) GetOrCreate(ctx context.Context, initiatorID int64) (*models.Chat, error) {
	chat, err := r.getByInitiator(ctx, initiatorID)
	if err != nil {
		return nil, err
	}
	if chat != nil {
		return chat, nil
	}

	query := `INSERT INTO chats (initiator_id) VALUES (?)`
	res, insertErr := r.db.ExecContext(ctx, query, initiatorID)
	if insertErr != nil {
		// Lost the race to a concurrent insert; the row must exist now.
		chat, err = r.getByInitiator(ctx, initiatorID)
		if err != nil {
			return nil, err
		}
		if chat != nil {
			return chat, nil
		}
		return nil, fmt.Errorf("failed to create chat: %w", insertErr)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new chat id: %w", err)
	}
	return &models.Chat{ID: id, InitiatorID: initiatorID}, nil
}

func (r *sqliteChatRepository) getByInitiator(ctx context.Context, initiatorID int64) (*models.Chat, error) {
	var chat models.Chat
	query := `SELECT id, initiator_id FROM chats WHERE initiator_id = ?`
	err := r.db.GetContext(ctx, &chat, query, initiatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return &chat, nil
}
