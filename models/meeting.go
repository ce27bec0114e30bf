package models

import "time"

// Meeting holds the joinable credentials returned by the meeting provider.
type Meeting struct {
	MeetingID   string    `json:"meetingId"`
	MeetingLink string    `json:"meetingLink"`
	Password    string    `json:"password,omitempty"`
	Type        string    `json:"type"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Duration    int       `json:"duration"`
}

// MeetingJoinDetails is returned to a participant joining a meeting.
type MeetingJoinDetails struct {
	MeetingID string `json:"meetingId"`
	JoinURL   string `json:"joinUrl"`
	UserName  string `json:"userName"`
}

// MeetingStatus mirrors the provider's view of a meeting.
type MeetingStatus struct {
	MeetingID string `json:"meetingId"`
	Status    string `json:"status"`
	StartTime string `json:"startTime,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}
