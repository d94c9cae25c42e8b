package handler

import (
	"time"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type sendRecognitionRequest struct {
	ToUserID   string `json:"to_user_id" validate:"required"`
	Message    string `json:"message"    validate:"required,max=500"`
	Emoji      string `json:"emoji"      validate:"max=16"`
	Visibility string `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE ANONYMOUS"`
}

// recognitionResponse is the transport view of a recognition. The
// from_user_id field is null exactly when the recognition is anonymous;
// the sender identity never leaves the service for those.
type recognitionResponse struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Emoji      string    `json:"emoji"`
	FromUserID *string   `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
	Keywords   []string  `json:"keywords"`
}

type listRecognitionsResponse struct {
	Data  []recognitionResponse `json:"data"`
	Count int                   `json:"count"`
}

func toRecognitionResponse(r domain.Recognition) recognitionResponse {
	resp := recognitionResponse{
		ID:         r.ID,
		Message:    r.Message,
		Emoji:      r.Emoji,
		ToUserID:   r.ToUserID,
		Visibility: string(r.Visibility),
		CreatedAt:  r.CreatedAt,
		Keywords:   r.Keywords,
	}
	if id, ok := r.Sender.UserID(); ok {
		resp.FromUserID = &id
	}
	return resp
}

func toListRecognitionsResponse(recs []domain.Recognition) listRecognitionsResponse {
	data := make([]recognitionResponse, 0, len(recs))
	for _, r := range recs {
		data = append(data, toRecognitionResponse(r))
	}
	return listRecognitionsResponse{Data: data, Count: len(data)}
}
