package meeting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lexhub/config"
	"lexhub/models"

	"github.com/google/uuid"
)

// LocalService hosts meetings on the application's own signaling relay
// instead of an external provider. Used when no Zoom credentials are set.
type LocalService struct {
	mu    sync.RWMutex
	rooms map[string]*models.Meeting
}

// NewLocalService creates a relay-backed MeetingService.
func NewLocalService() *LocalService {
	return &LocalService{rooms: make(map[string]*models.Meeting)}
}

func (l *LocalService) roomURL(meetingID string) string {
	base := config.AppConfig.ClientURL
	if base == "" {
		base = "http://localhost:" + config.AppConfig.AppPort
	}
	return fmt.Sprintf("%s/consultations/room/%s", base, meetingID)
}

func (l *LocalService) CreateMeeting(_ context.Context, _ string, scheduledAt time.Time, duration int) (*models.Meeting, error) {
	m := &models.Meeting{
		MeetingID:   uuid.New().String(),
		Type:        "local",
		ScheduledAt: scheduledAt,
		Duration:    duration,
	}
	m.MeetingLink = l.roomURL(m.MeetingID)

	l.mu.Lock()
	l.rooms[m.MeetingID] = m
	l.mu.Unlock()
	return m, nil
}

func (l *LocalService) JoinMeeting(_ context.Context, meetingID, userName string) (*models.MeetingJoinDetails, error) {
	l.mu.RLock()
	_, ok := l.rooms[meetingID]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("meeting %s not found", meetingID)
	}
	return &models.MeetingJoinDetails{
		MeetingID: meetingID,
		JoinURL:   l.roomURL(meetingID),
		UserName:  userName,
	}, nil
}

func (l *LocalService) EndMeeting(_ context.Context, meetingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.rooms[meetingID]; !ok {
		return fmt.Errorf("meeting %s not found", meetingID)
	}
	delete(l.rooms, meetingID)
	return nil
}

func (l *LocalService) GetMeetingStatus(_ context.Context, meetingID string) (*models.MeetingStatus, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.rooms[meetingID]
	if !ok {
		return &models.MeetingStatus{MeetingID: meetingID, Status: "ended"}, nil
	}
	return &models.MeetingStatus{
		MeetingID: meetingID,
		Status:    "waiting",
		StartTime: m.ScheduledAt.Format(time.RFC3339),
		Duration:  m.Duration,
	}, nil
}
