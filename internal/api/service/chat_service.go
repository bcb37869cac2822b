package service

import (
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/repository"
	"context"
)

// ChatService defines the interface for chat business logic.
type ChatService interface {
	GetOrCreate(ctx context.Context, initiatorID int64) (*models.Chat, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
}

// NewChatService creates a new ChatService.
func NewChatService(chatRepo repository.ChatRepository) ChatService {
	return &chatService{chatRepo: chatRepo}
}

// GetOrCreate returns the caller's chat, creating it on first access.
func (s *chatService) GetOrCreate(ctx context.Context, initiatorID int64) (*models.Chat, error) {
	return s.chatRepo.GetOrCreate(ctx, initiatorID)
}
