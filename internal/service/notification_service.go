package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pawrescue-be/internal/model"
	"pawrescue-be/internal/pkg/logger"
	"pawrescue-be/internal/repository"
	"pawrescue-be/pkg/events"
	pktNats "pawrescue-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type notificationTarget string

const (
	targetSelf  notificationTarget = "SELF"  // payload user_id
	targetStaff notificationTarget = "STAFF" // every vet and admin
	targetAdmin notificationTarget = "ADMIN"
	targetAll   notificationTarget = "ALL" // every connected client, no inbox row
)

type notificationConfig struct {
	Title    string
	Template string
	Target   notificationTarget
}

// notificationConfigs maps event codes to inbox templates. Events without
// an entry never become notifications.
var notificationConfigs = map[string]notificationConfig{
	events.AnimalCreated: {
		Title:    "New arrival",
		Template: "{animal_name} just arrived at the shelter.",
		Target:   targetAll,
	},
	events.AdoptionSubmitted: {
		Title:    "New adoption request",
		Template: "A new adoption request came in for {animal_name}.",
		Target:   targetStaff,
	},
	events.AdoptionDecided: {
		Title:    "Adoption request update",
		Template: "Your adoption request for {animal_name} was {status}.",
		Target:   targetSelf,
	},
	events.ReportSubmitted: {
		Title:    "New rescue report",
		Template: "{animal_name} was reported at {location}.",
		Target:   targetStaff,
	},
	events.ReportAdvanced: {
		Title:    "Rescue report update",
		Template: "Your rescue report for {animal_name} moved to {to}.",
		Target:   targetSelf,
	},
	events.TreatmentRecorded: {
		Title:    "Treatment recorded",
		Template: "{vet_name} recorded a treatment for {animal_name}.",
		Target:   targetAdmin,
	},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the stream prefix
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	config, ok := notificationConfigs[typeCode]
	if !ok {
		return nil
	}

	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	// Feed-style events go to every open connection and are not persisted.
	if config.Target == targetAll {
		if s.delivery != nil {
			s.delivery.Broadcast(s.buildNotification(uuid.Nil, typeCode, config, event))
		}
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, typeCode, config, event)

		if err := s.repo.Create(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config notificationConfig, event events.Event) ([]uuid.UUID, error) {
	switch config.Target {
	case targetSelf:
		if uidStr, ok := event.Payload()["user_id"].(string); ok {
			uid, err := uuid.Parse(uidStr)
			if err == nil {
				return []uuid.UUID{uid}, nil
			}
		}
		s.logger.Warn("NotificationService", fmt.Sprintf("Target SELF but no user_id in payload for event %s", event.EventType()), nil)
		return nil, nil

	case targetStaff:
		return s.repo.ListUserIDsByRole(ctx, "vet", "admin")

	case targetAdmin:
		return s.repo.ListUserIDsByRole(ctx, "admin")
	}

	return nil, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, config notificationConfig, event events.Event) model.Notification {
	// Simple template engine: {key} placeholders from the payload
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	entityType := ""
	var entityID *uuid.UUID

	if et, ok := payload["entity_type"].(string); ok {
		entityType = et
	}
	if eidStr, ok := payload["entity_id"].(string); ok {
		if eid, err := uuid.Parse(eidStr); err == nil {
			entityID = &eid
		}
	}

	metaMap := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		metaMap[k] = v
	}
	// Deep link for the client when the event names an entity
	if entityType != "" && entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   typeCode,
		EntityType: entityType,
		EntityID:   entityID,
		Title:      config.Title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkAsRead marks one of the user's notifications as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
