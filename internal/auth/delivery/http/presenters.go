package http

import (
	"time"

	"timeline-to-calendar/internal/auth"
)

// --- Request DTOs ---

type saveSystemPromptReq struct {
	Prompt string `json:"prompt" binding:"max=10000"`
}

func (r saveSystemPromptReq) validate() error { return nil }

// --- Response DTOs ---

type userResp struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Picture       string    `json:"picture,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	LastLogin     time.Time `json:"last_login"`
}

func newUserResp(u auth.User) userResp {
	return userResp{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Picture:       u.Picture,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}

type verifyResp struct {
	Valid bool     `json:"valid"`
	User  userResp `json:"user"`
}

func (h *handler) newVerifyResp(out auth.VerifyOutput) verifyResp {
	return verifyResp{Valid: true, User: newUserResp(out.User)}
}

type systemPromptResp struct {
	Prompt string `json:"prompt"`
}

type calendarStatusResp struct {
	HasCalendarAccess bool   `json:"has_calendar_access"`
	TokenExpired      bool   `json:"token_expired"`
	NeedsReauth       bool   `json:"needs_reauth"`
	Message           string `json:"message"`
}

func (h *handler) newCalendarStatusResp(out auth.CalendarStatusOutput) calendarStatusResp {
	return calendarStatusResp{
		HasCalendarAccess: out.HasCalendarAccess,
		TokenExpired:      out.TokenExpired,
		NeedsReauth:       out.NeedsReauth,
		Message:           out.Message,
	}
}
