package postgresadapter

import (
	"time"

	directoryvo "janus/contexts/identity/directory/domain/valueobjects"
	"janus/contexts/identity/sessions/domain/entities"
	"janus/contexts/identity/sessions/domain/valueobjects"
)

type signInEventModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id"`
	Identifier   string    `gorm:"column:identifier"`
	Status       string    `gorm:"column:status"`
	AuthModeUsed string    `gorm:"column:auth_mode_used"`
	MFAModeUsed  *string   `gorm:"column:mfa_mode_used"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	DeviceID     *string   `gorm:"column:device_id"`
	IPAddress    *string   `gorm:"column:ip_address"`
	IPCountry    *string   `gorm:"column:ip_country"`
	UserAgent    *string   `gorm:"column:user_agent"`
}

func (signInEventModel) TableName() string { return "user_sign_in_events" }

func signInEventModelFromEntity(event entities.SignInEvent) signInEventModel {
	var mfaMode *string
	if event.MFAModeUsed != nil {
		value := string(*event.MFAModeUsed)
		mfaMode = &value
	}
	return signInEventModel{
		ID:           event.ID,
		UserID:       event.UserID,
		Identifier:   event.Identifier,
		Status:       string(event.Status),
		AuthModeUsed: string(event.AuthModeUsed),
		MFAModeUsed:  mfaMode,
		CreatedAt:    event.CreatedAt,
		DeviceID:     event.DeviceID,
		IPAddress:    event.IPAddress,
		IPCountry:    event.IPCountry,
		UserAgent:    event.UserAgent,
	}
}

func (m signInEventModel) toEntity() entities.SignInEvent {
	var mfaMode *directoryvo.AuthProvider
	if m.MFAModeUsed != nil {
		value := directoryvo.AuthProvider(*m.MFAModeUsed)
		mfaMode = &value
	}
	return entities.SignInEvent{
		ID:           m.ID,
		UserID:       m.UserID,
		Identifier:   m.Identifier,
		Status:       valueobjects.SignInStatus(m.Status),
		AuthModeUsed: directoryvo.AuthProvider(m.AuthModeUsed),
		MFAModeUsed:  mfaMode,
		CreatedAt:    m.CreatedAt,
		DeviceID:     m.DeviceID,
		IPAddress:    m.IPAddress,
		IPCountry:    m.IPCountry,
		UserAgent:    m.UserAgent,
	}
}

type sessionModel struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	UserID            int64      `gorm:"column:user_id"`
	UserSignInEventID string     `gorm:"column:user_sign_in_event_id"`
	Status            string     `gorm:"column:status"`
	ExpiresAt         time.Time  `gorm:"column:expires_at"`
	TerminatedAt      *time.Time `gorm:"column:terminated_at"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	LastUsedAt        time.Time  `gorm:"column:last_used_at"`
	ElevatedUntil     *time.Time `gorm:"column:elevated_until"`
}

func (sessionModel) TableName() string { return "user_sessions" }

func sessionModelFromEntity(session entities.Session) sessionModel {
	return sessionModel{
		ID:                session.ID,
		UserID:            session.UserID,
		UserSignInEventID: session.SignInEventID,
		Status:            string(session.Status),
		ExpiresAt:         session.ExpiresAt,
		TerminatedAt:      session.TerminatedAt,
		CreatedAt:         session.CreatedAt,
		LastUsedAt:        session.LastUsedAt,
		ElevatedUntil:     session.ElevatedUntil,
	}
}

func (m sessionModel) toEntity() entities.Session {
	return entities.Session{
		ID:            m.ID,
		UserID:        m.UserID,
		SignInEventID: m.UserSignInEventID,
		Status:        valueobjects.SessionStatus(m.Status),
		ExpiresAt:     m.ExpiresAt,
		TerminatedAt:  m.TerminatedAt,
		CreatedAt:     m.CreatedAt,
		LastUsedAt:    m.LastUsedAt,
		ElevatedUntil: m.ElevatedUntil,
	}
}

type tokenModel struct {
	ID              string     `gorm:"column:id;primaryKey"`
	SessionID       int64      `gorm:"column:session_id"`
	ApplicationID   int32      `gorm:"column:application_id"`
	TokenHash       string     `gorm:"column:token_hash"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	ExpiresAt       time.Time  `gorm:"column:expires_at"`
	RevokedAt       *time.Time `gorm:"column:revoked_at"`
	IPAddress       *string    `gorm:"column:ip_address"`
	IPCountry       *string    `gorm:"column:ip_country"`
	PreviousTokenID *string    `gorm:"column:previous_token_id"`
}

func (tokenModel) TableName() string { return "user_session_tokens" }

func tokenModelFromEntity(token entities.Token) tokenModel {
	return tokenModel{
		ID:              token.ID,
		SessionID:       token.SessionID,
		ApplicationID:   token.ApplicationID,
		TokenHash:       token.TokenHash,
		CreatedAt:       token.CreatedAt,
		ExpiresAt:       token.ExpiresAt,
		RevokedAt:       token.RevokedAt,
		IPAddress:       token.IPAddress,
		IPCountry:       token.IPCountry,
		PreviousTokenID: token.PreviousTokenID,
	}
}

func (m tokenModel) toEntity() entities.Token {
	return entities.Token{
		ID:              m.ID,
		SessionID:       m.SessionID,
		ApplicationID:   m.ApplicationID,
		TokenHash:       m.TokenHash,
		CreatedAt:       m.CreatedAt,
		ExpiresAt:       m.ExpiresAt,
		RevokedAt:       m.RevokedAt,
		IPAddress:       m.IPAddress,
		IPCountry:       m.IPCountry,
		PreviousTokenID: m.PreviousTokenID,
	}
}
