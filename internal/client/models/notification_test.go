package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationValidate(t *testing.T) {
	tests := []struct {
		name    string
		n       Notification
		wantErr bool
	}{
		{
			name:    "valid custom",
			n:       Notification{Title: "Hello", Body: "World", Type: NotificationCustom},
			wantErr: false,
		},
		{
			name:    "title exactly at limit is accepted",
			n:       Notification{Title: strings.Repeat("a", NotificationTitleMax), Body: "b", Type: NotificationGift},
			wantErr: false,
		},
		{
			name:    "title one over limit is rejected",
			n:       Notification{Title: strings.Repeat("a", NotificationTitleMax+1), Body: "b", Type: NotificationGift},
			wantErr: true,
		},
		{
			name:    "body exactly at limit is accepted",
			n:       Notification{Title: "t", Body: strings.Repeat("b", NotificationBodyMax), Type: NotificationSystem},
			wantErr: false,
		},
		{
			name:    "body one over limit is rejected",
			n:       Notification{Title: "t", Body: strings.Repeat("b", NotificationBodyMax+1), Type: NotificationSystem},
			wantErr: true,
		},
		{
			name:    "empty title rejected",
			n:       Notification{Body: "b", Type: NotificationReminder},
			wantErr: true,
		},
		{
			name:    "empty body rejected",
			n:       Notification{Title: "t", Type: NotificationReminder},
			wantErr: true,
		},
		{
			name:    "unknown type rejected",
			n:       Notification{Title: "t", Body: "b", Type: "broadcast"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNotificationValidate_CountsRunesNotBytes(t *testing.T) {
	// 100 multi-byte characters must pass even though the byte length is 300.
	n := Notification{
		Title: strings.Repeat("é", NotificationTitleMax),
		Body:  "b",
		Type:  NotificationCustom,
	}
	require.NoError(t, n.Validate())
}

func TestNotificationValidate_TitleRequiredSentinel(t *testing.T) {
	err := Notification{Body: "b", Type: NotificationCustom}.Validate()
	require.ErrorIs(t, err, ErrNotificationTitleRequired)
}
