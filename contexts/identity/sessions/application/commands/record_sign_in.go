package commands

import (
	"context"
	"log/slog"

	directoryvo "janus/contexts/identity/directory/domain/valueobjects"
	application "janus/contexts/identity/sessions/application"
	"janus/contexts/identity/sessions/domain/entities"
	"janus/contexts/identity/sessions/domain/valueobjects"
	"janus/contexts/identity/sessions/ports"
)

// RecordSignInEventCommand captures one authentication attempt. The outcome
// is recorded even when authentication failed.
type RecordSignInEventCommand struct {
	UserID     int64
	Identifier string
	Status     string
	AuthMode   string
	MFAMode    *string

	DeviceID  *string
	IPAddress *string
	IPCountry *string
	UserAgent *string
}

// RecordSignInEventUseCase appends an immutable sign-in event.
type RecordSignInEventUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RecordSignInEventUseCase) Execute(ctx context.Context, cmd RecordSignInEventCommand) (entities.SignInEvent, error) {
	logger := application.ResolveLogger(u.Logger)

	status, err := valueobjects.ParseSignInStatus(cmd.Status)
	if err != nil {
		return entities.SignInEvent{}, err
	}
	authMode, err := directoryvo.ParseAuthProvider(cmd.AuthMode)
	if err != nil {
		return entities.SignInEvent{}, err
	}
	var mfaMode *directoryvo.AuthProvider
	if cmd.MFAMode != nil {
		parsed, err := directoryvo.ParseAuthProvider(*cmd.MFAMode)
		if err != nil {
			return entities.SignInEvent{}, err
		}
		mfaMode = &parsed
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.SignInEvent{}, err
	}

	event := entities.SignInEvent{
		ID:           id,
		UserID:       cmd.UserID,
		Identifier:   cmd.Identifier,
		Status:       status,
		AuthModeUsed: authMode,
		MFAModeUsed:  mfaMode,
		CreatedAt:    u.Clock.Now(),
		DeviceID:     cmd.DeviceID,
		IPAddress:    cmd.IPAddress,
		IPCountry:    cmd.IPCountry,
		UserAgent:    cmd.UserAgent,
	}
	if err := u.Repository.InsertSignInEvent(ctx, event); err != nil {
		return entities.SignInEvent{}, err
	}

	logger.Info("sign-in event recorded",
		"event", "sessions_sign_in_recorded",
		"module", "identity/sessions",
		"user_id", cmd.UserID,
		"status", string(status),
	)
	return event, nil
}
