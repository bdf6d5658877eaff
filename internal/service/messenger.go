package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ainatrbl/aina/internal/auth"
	"github.com/ainatrbl/aina/internal/database"
	"github.com/ainatrbl/aina/internal/database/repository"
)

// MessengerService reads and appends chat-room history. Access is re-checked
// on every operation so a drill-in URL can never bypass the list filter.
type MessengerService struct {
	Rooms *repository.RoomRepo
}

// Room returns the room header and its history, oldest first.
func (s *MessengerService) Room(ctx context.Context, who auth.Identity, roomID string) (repository.Room, []repository.Message, error) {
	room, err := s.Rooms.Get(ctx, roomID)
	if err != nil {
		return repository.Room{}, nil, err
	}
	if !roomAccessible(room, who) {
		return repository.Room{}, nil, fmt.Errorf("room %s: not a member", room.Name)
	}
	msgs, err := s.Rooms.Messages(ctx, roomID)
	if err != nil {
		return repository.Room{}, nil, err
	}
	return room, msgs, nil
}

// Post appends a message from the member to the room.
func (s *MessengerService) Post(ctx context.Context, who auth.Identity, roomID, body string) (repository.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return repository.Message{}, fmt.Errorf("empty message")
	}
	room, err := s.Rooms.Get(ctx, roomID)
	if err != nil {
		return repository.Message{}, err
	}
	if !roomAccessible(room, who) {
		return repository.Message{}, fmt.Errorf("room %s: not a member", room.Name)
	}
	return s.Rooms.AppendMessage(ctx, roomID, who.FullName, body, database.Now())
}
