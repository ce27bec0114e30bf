package meeting

import (
	"context"
	"time"

	"lexhub/config"
	"lexhub/models"
)

// MeetingService provisions and controls real-time meeting rooms. The
// returned identifiers are opaque to callers.
type MeetingService interface {
	// CreateMeeting provisions a room for the given time span.
	CreateMeeting(ctx context.Context, topic string, scheduledAt time.Time, duration int) (*models.Meeting, error)
	// JoinMeeting returns join credentials for a provisioned room.
	JoinMeeting(ctx context.Context, meetingID, userName string) (*models.MeetingJoinDetails, error)
	// EndMeeting terminates a provisioned room.
	EndMeeting(ctx context.Context, meetingID string) error
	// GetMeetingStatus reports the provider's view of a room.
	GetMeetingStatus(ctx context.Context, meetingID string) (*models.MeetingStatus, error)
}

// NewMeetingService picks the Zoom-backed service when credentials are
// configured and falls back to locally hosted rooms otherwise.
func NewMeetingService() MeetingService {
	if config.AppConfig.ZoomAPIKey != "" && config.AppConfig.ZoomAPISecret != "" {
		return NewZoomService()
	}
	return NewLocalService()
}
