package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

// MessageResponse обращение из контактной формы
type MessageResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageListResponse страница обращений, новые первыми
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Limit    uint64            `json:"limit"`
	Offset   uint64            `json:"offset"`
}

// Service чтение обращений для админки
type Service struct {
	repo   ContactRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса обращений
func NewService(repo ContactRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает страницу обращений
func (s *Service) List(ctx context.Context, limit, offset uint64) (*MessageListResponse, error) {
	if limit == 0 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	messages, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := &MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
		Limit:    limit,
		Offset:   offset,
	}
	for _, m := range messages {
		result.Messages = append(result.Messages, MessageResponse{
			ID:        m.ID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Phone:     m.Phone,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}
