package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lexhub/config"
	"lexhub/models"
	"lexhub/utils"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const zoomBaseURL = "https://api.zoom.us/v2"

// ZoomService provisions meetings through the Zoom REST API.
type ZoomService struct {
	client  *http.Client
	baseURL string
}

// NewZoomService creates a Zoom-backed MeetingService.
func NewZoomService() *ZoomService {
	return &ZoomService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: zoomBaseURL,
	}
}

// apiToken signs a short-lived JWT accepted by the Zoom API.
func (z *ZoomService) apiToken() (string, error) {
	claims := jwt.MapClaims{
		"iss": config.AppConfig.ZoomAPIKey,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.ZoomAPISecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign zoom token: %w", err)
	}
	return signed, nil
}

func (z *ZoomService) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode zoom request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, z.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build zoom request: %w", err)
	}
	token, err := z.apiToken()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := z.client.Do(req)
	if err != nil {
		return fmt.Errorf("zoom request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zoom returned %d: %s", resp.StatusCode, string(raw))
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode zoom response: %w", err)
		}
	}
	return nil
}

type zoomMeeting struct {
	ID        int64  `json:"id"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Status    string `json:"status"`
}

func (z *ZoomService) CreateMeeting(ctx context.Context, topic string, scheduledAt time.Time, duration int) (*models.Meeting, error) {
	payload := map[string]any{
		"topic":      topic,
		"type":       2, // scheduled meeting
		"start_time": scheduledAt.UTC().Format("2006-01-02T15:04:05Z"),
		"duration":   duration,
		"settings": map[string]any{
			"host_video":        true,
			"participant_video": true,
			"join_before_host":  true,
			"waiting_room":      false,
		},
	}

	var created zoomMeeting
	if err := z.do(ctx, http.MethodPost, "/users/me/meetings", payload, &created); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Zoom meeting created", zap.Int64("meetingID", created.ID))
	return &models.Meeting{
		MeetingID:   fmt.Sprintf("%d", created.ID),
		MeetingLink: created.JoinURL,
		Password:    created.Password,
		Type:        "zoom",
		ScheduledAt: scheduledAt,
		Duration:    duration,
	}, nil
}

func (z *ZoomService) JoinMeeting(ctx context.Context, meetingID, userName string) (*models.MeetingJoinDetails, error) {
	var m zoomMeeting
	if err := z.do(ctx, http.MethodGet, "/meetings/"+meetingID, nil, &m); err != nil {
		return nil, err
	}
	return &models.MeetingJoinDetails{
		MeetingID: meetingID,
		JoinURL:   m.JoinURL,
		UserName:  userName,
	}, nil
}

func (z *ZoomService) EndMeeting(ctx context.Context, meetingID string) error {
	payload := map[string]string{"action": "end"}
	return z.do(ctx, http.MethodPut, "/meetings/"+meetingID+"/status", payload, nil)
}

func (z *ZoomService) GetMeetingStatus(ctx context.Context, meetingID string) (*models.MeetingStatus, error) {
	var m zoomMeeting
	if err := z.do(ctx, http.MethodGet, "/meetings/"+meetingID, nil, &m); err != nil {
		return nil, err
	}
	return &models.MeetingStatus{
		MeetingID: meetingID,
		Status:    m.Status,
		StartTime: m.StartTime,
		Duration:  m.Duration,
	}, nil
}
