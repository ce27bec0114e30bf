package meeting

import (
	"context"
	"testing"
	"time"
)

func TestLocalServiceLifecycle(t *testing.T) {
	svc := NewLocalService()
	ctx := context.Background()

	m, err := svc.CreateMeeting(ctx, "Consultation", time.Now().Add(time.Hour), 30)
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if m.MeetingID == "" || m.MeetingLink == "" {
		t.Fatalf("incomplete meeting: %+v", m)
	}

	details, err := svc.JoinMeeting(ctx, m.MeetingID, "user-1")
	if err != nil {
		t.Fatalf("JoinMeeting: %v", err)
	}
	if details.JoinURL != m.MeetingLink {
		t.Errorf("join URL %q does not match meeting link %q", details.JoinURL, m.MeetingLink)
	}

	status, err := svc.GetMeetingStatus(ctx, m.MeetingID)
	if err != nil {
		t.Fatalf("GetMeetingStatus: %v", err)
	}
	if status.Status != "waiting" {
		t.Errorf("status = %s, want waiting", status.Status)
	}

	if err := svc.EndMeeting(ctx, m.MeetingID); err != nil {
		t.Fatalf("EndMeeting: %v", err)
	}
	if _, err := svc.JoinMeeting(ctx, m.MeetingID, "user-1"); err == nil {
		t.Error("joining an ended meeting should fail")
	}

	status, err = svc.GetMeetingStatus(ctx, m.MeetingID)
	if err != nil {
		t.Fatalf("GetMeetingStatus after end: %v", err)
	}
	if status.Status != "ended" {
		t.Errorf("status = %s, want ended", status.Status)
	}

	if err := svc.EndMeeting(ctx, "missing"); err == nil {
		t.Error("ending an unknown meeting should fail")
	}
}
