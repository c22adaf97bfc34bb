package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/push"
	"supercopa.app/backend/internal/repository"
)

const defaultHistoryLimit = 50

type NotificationService interface {
	// Broadcast records the notification and publishes it to connected
	// clients. A failed publish does not fail the request; the record is
	// the source of truth.
	Broadcast(ctx context.Context, in dto.SendNotificationRequest, sender string) (*model.Notification, error)
	// SendTest publishes without recording anything.
	SendTest(ctx context.Context) error
	History(ctx context.Context, limit int) ([]model.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	repo    repository.NotificationRepository
	gateway *push.Gateway
}

func NewNotificationService(repo repository.NotificationRepository, gateway *push.Gateway) NotificationService {
	return &notificationService{repo: repo, gateway: gateway}
}

func (s *notificationService) Broadcast(ctx context.Context, in dto.SendNotificationRequest, sender string) (*model.Notification, error) {
	if sender == "" {
		sender = model.NotificationSenderSystem
	}

	payload := push.NewBroadcast(strings.TrimSpace(in.Title), strings.TrimSpace(in.Message))

	notification := &model.Notification{
		Title:   payload.Title,
		Message: payload.Body,
		SentAt:  time.Now(),
		SentBy:  sender,
		Status:  model.NotificationStatusSent,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if err := s.gateway.Publish(ctx, payload); err != nil {
		log.Printf("failed to publish notification %s: %v", notification.ID, err)
	}

	return notification, nil
}

func (s *notificationService) SendTest(ctx context.Context) error {
	return s.gateway.Publish(ctx, push.NewTest("", "Notificação de teste"))
}

func (s *notificationService) History(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
