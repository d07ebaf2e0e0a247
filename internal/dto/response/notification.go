package response

import (
	"time"

	"heavenstay/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	IsRead    bool                    `json:"is_read"`
	RelatedID *string                 `json:"related_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type NotificationListResponse struct {
	UnreadCount   int64                                    `json:"unread_count"`
	Notifications *PaginatedResponse[NotificationResponse] `json:"notifications"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.RelatedID != nil {
		related := n.RelatedID.String()
		resp.RelatedID = &related
	}
	return resp
}
