package dto

import "github.com/bizease/bizease_backend/internal/core/domain"

// AlertResponse is the API representation of an alert.
type AlertResponse struct {
	domain.Alert
}

// ListAlertsResponse is the set of alerts with the unread count.
type ListAlertsResponse struct {
	Alerts      []AlertResponse `json:"alerts"`
	UnreadCount int             `json:"unreadCount"`
}

// ToListAlertsResponse converts domain alerts to a list response.
func ToListAlertsResponse(alerts []domain.Alert) ListAlertsResponse {
	resp := ListAlertsResponse{Alerts: make([]AlertResponse, 0, len(alerts))}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, AlertResponse{Alert: a})
		if !a.IsRead {
			resp.UnreadCount++
		}
	}
	return resp
}
