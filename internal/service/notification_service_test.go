package service

import (
	"strings"
	"testing"
	"time"

	"pawrescue-be/pkg/events"

	"github.com/google/uuid"
)

func TestBuildNotificationResolvesEveryPlaceholder(t *testing.T) {
	svc := &NotificationService{}
	userID := uuid.New()
	animalID := uuid.New()
	reportID := uuid.New()

	tests := []struct {
		name     string
		typeCode string
		payload  map[string]interface{}
		contains []string
	}{
		{
			name:     "report advanced",
			typeCode: events.ReportAdvanced,
			payload: map[string]interface{}{
				"report_id":   reportID,
				"animal_id":   animalID,
				"animal_name": "Rex",
				"from":        "new",
				"to":          "processing",
				"user_id":     userID.String(),
				"entity_type": "report",
				"entity_id":   reportID.String(),
			},
			contains: []string{"Rex", "processing"},
		},
		{
			name:     "adoption decided",
			typeCode: events.AdoptionDecided,
			payload: map[string]interface{}{
				"animal_name": "Mochi",
				"status":      "approved",
				"user_id":     userID.String(),
			},
			contains: []string{"Mochi", "approved"},
		},
		{
			name:     "report submitted",
			typeCode: events.ReportSubmitted,
			payload: map[string]interface{}{
				"animal_name": "Biscuit",
				"location":    "Riverside Park",
			},
			contains: []string{"Biscuit", "Riverside Park"},
		},
		{
			name:     "treatment recorded",
			typeCode: events.TreatmentRecorded,
			payload: map[string]interface{}{
				"animal_name": "Pepper",
				"vet_name":    "Dr. Maya",
			},
			contains: []string{"Pepper", "Dr. Maya"},
		},
		{
			name:     "animal created",
			typeCode: events.AnimalCreated,
			payload: map[string]interface{}{
				"animal_name": "Luna",
			},
			contains: []string{"Luna"},
		},
		{
			name:     "adoption submitted",
			typeCode: events.AdoptionSubmitted,
			payload: map[string]interface{}{
				"animal_name": "Rex",
			},
			contains: []string{"Rex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, ok := notificationConfigs[tt.typeCode]
			if !ok {
				t.Fatalf("no notification config for %s", tt.typeCode)
			}

			event := events.BaseEvent{
				Type:       tt.typeCode,
				Data:       tt.payload,
				OccurredAt: time.Now(),
			}

			notif := svc.buildNotification(userID, tt.typeCode, config, event)

			if strings.Contains(notif.Message, "{") || strings.Contains(notif.Message, "}") {
				t.Errorf("message %q still contains a template placeholder", notif.Message)
			}
			for _, want := range tt.contains {
				if !strings.Contains(notif.Message, want) {
					t.Errorf("message %q does not mention %q", notif.Message, want)
				}
			}
		})
	}
}

func TestBuildNotificationDeepLink(t *testing.T) {
	svc := &NotificationService{}
	reportID := uuid.New()

	event := events.BaseEvent{
		Type: events.ReportAdvanced,
		Data: map[string]interface{}{
			"animal_name": "Rex",
			"to":          "completed",
			"entity_type": "report",
			"entity_id":   reportID.String(),
		},
		OccurredAt: time.Now(),
	}

	notif := svc.buildNotification(uuid.New(), events.ReportAdvanced, notificationConfigs[events.ReportAdvanced], event)

	if notif.EntityType != "report" {
		t.Errorf("EntityType = %q, want report", notif.EntityType)
	}
	if notif.EntityID == nil || *notif.EntityID != reportID {
		t.Errorf("EntityID = %v, want %s", notif.EntityID, reportID)
	}
	if !strings.Contains(string(notif.Metadata), "/reports/"+reportID.String()) {
		t.Errorf("metadata %s lacks the action url", notif.Metadata)
	}
}
