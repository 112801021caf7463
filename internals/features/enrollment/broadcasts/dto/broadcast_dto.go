package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

// SendBroadcastRequest — kirim pesan ke wali satu session.
// Statuses default: confirmed saja.
type SendBroadcastRequest struct {
	Subject  string   `json:"subject" validate:"required,max=200"`
	Body     string   `json:"body" validate:"required,max=5000"`
	Statuses []string `json:"statuses" validate:"omitempty,dive,oneof=pending confirmed waitlisted withdrawn"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SendBroadcastResponse struct {
	Queued int  `json:"queued"`
	Sent   bool `json:"sent"` // false = publisher gagal, pesan tidak dikirim
}
