package sessions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sessions "janus/contexts/identity/sessions"
	"janus/contexts/identity/sessions/application/commands"
	"janus/contexts/identity/sessions/domain/entities"
	domainerrors "janus/contexts/identity/sessions/domain/errors"
	"janus/contexts/identity/sessions/domain/valueobjects"
)

func recordEvent(t *testing.T, module sessions.Module, userID int64, status string) entities.SignInEvent {
	t.Helper()

	event, err := module.RecordSignIn.Execute(context.Background(), commands.RecordSignInEventCommand{
		UserID:     userID,
		Identifier: "user@example.com",
		Status:     status,
		AuthMode:   "PASSWORD",
	})
	if err != nil {
		t.Fatalf("record sign-in event failed: %v", err)
	}
	return event
}

func openSession(t *testing.T, module sessions.Module, userID int64) entities.Session {
	t.Helper()

	event := recordEvent(t, module, userID, "SUCCESS")
	session, err := module.OpenSession.Execute(context.Background(), commands.OpenSessionCommand{
		UserID:        userID,
		SignInEventID: event.ID,
		ExpiresAt:     time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}
	return session
}

func TestOpenSessionRequiresSuccessfulEvent(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()

	failed := recordEvent(t, module, 7, "INVALID_CREDENTIALS")
	_, err := module.OpenSession.Execute(ctx, commands.OpenSessionCommand{
		UserID:        7,
		SignInEventID: failed.ID,
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrSignInNotSuccessful) {
		t.Fatalf("expected rejection for failed sign-in, got %v", err)
	}

	success := recordEvent(t, module, 7, "SUCCESS")
	_, err = module.OpenSession.Execute(ctx, commands.OpenSessionCommand{
		UserID:        8,
		SignInEventID: success.ID,
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrSignInEventUserMismatch) {
		t.Fatalf("expected rejection for foreign event, got %v", err)
	}

	_, err = module.OpenSession.Execute(ctx, commands.OpenSessionCommand{
		UserID:        7,
		SignInEventID: "00000000-0000-0000-0000-000000000000",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrSignInEventNotFound) {
		t.Fatalf("expected unknown event rejection, got %v", err)
	}

	_, err = module.OpenSession.Execute(ctx, commands.OpenSessionCommand{
		UserID:        7,
		SignInEventID: success.ID,
		ExpiresAt:     time.Now().Add(-time.Minute),
	})
	if !errors.Is(err, domainerrors.ErrExpiryInPast) {
		t.Fatalf("expected past expiry rejection, got %v", err)
	}

	session, err := module.OpenSession.Execute(ctx, commands.OpenSessionCommand{
		UserID:        7,
		SignInEventID: success.ID,
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("open session failed: %v", err)
	}
	if session.Status != valueobjects.SessionStatusActive {
		t.Fatalf("expected new session to be ACTIVE, got %s", session.Status)
	}
}

func TestIssueTokenRotatesLivePair(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()
	session := openSession(t, module, 42)

	first, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "hash-1",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("first issuance failed: %v", err)
	}
	if first.PreviousTokenID != nil {
		t.Fatalf("first token must not link to a predecessor")
	}

	second, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "hash-2",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("second issuance failed: %v", err)
	}
	if second.PreviousTokenID == nil || *second.PreviousTokenID != first.ID {
		t.Fatalf("expected second token to link to first, got %v", second.PreviousTokenID)
	}

	// The superseded token is revoked, the new one is the only live token.
	check, err := module.CheckToken.Execute(ctx, "hash-1")
	if err != nil {
		t.Fatalf("check of rotated hash failed: %v", err)
	}
	if check.Live || !check.Replayed {
		t.Fatalf("expected rotated token to read as replayed, got %+v", check)
	}

	check, err = module.CheckToken.Execute(ctx, "hash-2")
	if err != nil {
		t.Fatalf("check of live hash failed: %v", err)
	}
	if !check.Live || check.Replayed {
		t.Fatalf("expected head token to be live, got %+v", check)
	}

	if _, err := module.CheckToken.Execute(ctx, "hash-unknown"); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected unknown hash rejection, got %v", err)
	}

	// A different application keeps an independent pair.
	other, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 2,
		TokenHash:     "hash-other-app",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("issuance for second application failed: %v", err)
	}
	if other.PreviousTokenID != nil {
		t.Fatalf("pairs must rotate independently per application")
	}
}

func TestRevokedHeadIsNotReplay(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()
	session := openSession(t, module, 11)

	if _, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "head-1",
		ExpiresAt:     time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("first issuance failed: %v", err)
	}
	if _, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "head-2",
		ExpiresAt:     time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("second issuance failed: %v", err)
	}

	if err := module.TerminateSession.Execute(ctx, session.ID); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}

	// Sign-out revokes the head, it does not supersede it. Retrying the
	// current token after sign-out is dead, not suspicious.
	check, err := module.CheckToken.Execute(ctx, "head-2")
	if err != nil {
		t.Fatalf("check of revoked head failed: %v", err)
	}
	if check.Live {
		t.Fatalf("terminated session's head must not be live")
	}
	if check.Replayed {
		t.Fatalf("revoked head must not read as replayed, got %+v", check)
	}

	// The rotated-away link stays a replay signal regardless.
	check, err = module.CheckToken.Execute(ctx, "head-1")
	if err != nil {
		t.Fatalf("check of superseded token failed: %v", err)
	}
	if !check.Replayed {
		t.Fatalf("superseded token must read as replayed, got %+v", check)
	}
}

func TestIssueTokenValidation(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()
	session := openSession(t, module, 42)

	_, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrTokenHashRequired) {
		t.Fatalf("expected hash required, got %v", err)
	}

	_, err = module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "h",
		ExpiresAt:     time.Now().Add(-time.Minute),
	})
	if !errors.Is(err, domainerrors.ErrExpiryInPast) {
		t.Fatalf("expected past expiry rejection, got %v", err)
	}

	_, err = module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID + 100,
		ApplicationID: 1,
		TokenHash:     "h",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected unknown session rejection, got %v", err)
	}

	if err := module.RevokeSession.Execute(ctx, session.ID); err != nil {
		t.Fatalf("revoke session failed: %v", err)
	}
	_, err = module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "h",
		ExpiresAt:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrSessionNotActive) {
		t.Fatalf("expected revoked session rejection, got %v", err)
	}
}

func TestTokenChainWalksEveryLinkOnce(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()
	session := openSession(t, module, 42)

	hashes := []string{"chain-1", "chain-2", "chain-3"}
	var issued []entities.Token
	for _, hash := range hashes {
		token, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
			SessionID:     session.ID,
			ApplicationID: 5,
			TokenHash:     hash,
			ExpiresAt:     time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("issuance of %s failed: %v", hash, err)
		}
		issued = append(issued, token)
	}

	chain, err := module.TokenChain.Execute(ctx, session.ID, 5)
	if err != nil {
		t.Fatalf("chain walk failed: %v", err)
	}
	if len(chain) != len(issued) {
		t.Fatalf("expected %d links, got %d", len(issued), len(chain))
	}
	// Head first, oldest last.
	for i := range chain {
		expected := issued[len(issued)-1-i]
		if chain[i].ID != expected.ID {
			t.Fatalf("link %d: expected %s, got %s", i, expected.ID, chain[i].ID)
		}
	}
	if chain[0].RevokedAt != nil {
		t.Fatalf("head must be live")
	}
	for _, link := range chain[1:] {
		if link.RevokedAt == nil {
			t.Fatalf("superseded link %s must be revoked", link.ID)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()
	session := openSession(t, module, 9)

	if _, err := module.IssueToken.Execute(ctx, commands.IssueTokenCommand{
		SessionID:     session.ID,
		ApplicationID: 1,
		TokenHash:     "life-1",
		ExpiresAt:     time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("issuance failed: %v", err)
	}

	if err := module.TouchSession.Execute(ctx, session.ID); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	if err := module.ElevateSession.Execute(ctx, session.ID, time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("elevate failed: %v", err)
	}
	elevated, err := module.GetSession.Execute(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if !elevated.PrivilegedAt(time.Now()) {
		t.Fatalf("expected session to be privileged inside the elevation window")
	}

	if err := module.TerminateSession.Execute(ctx, session.ID); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	terminated, err := module.GetSession.Execute(ctx, session.ID)
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if terminated.Status != valueobjects.SessionStatusTerminated || terminated.TerminatedAt == nil {
		t.Fatalf("expected TERMINATED with timestamp, got %+v", terminated)
	}
	// Elevation never outranks a dead session.
	if terminated.PrivilegedAt(time.Now()) {
		t.Fatalf("terminated session must not be privileged")
	}

	check, err := module.CheckToken.Execute(ctx, "life-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if check.Live {
		t.Fatalf("termination must revoke the session's tokens")
	}

	if err := module.TerminateSession.Execute(ctx, session.ID+100); !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected unknown session rejection, got %v", err)
	}
}

func TestRecordSignInEventValidatesEnums(t *testing.T) {
	module := sessions.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.RecordSignIn.Execute(ctx, commands.RecordSignInEventCommand{
		UserID:     1,
		Identifier: "x",
		Status:     "MAYBE",
		AuthMode:   "PASSWORD",
	})
	if err == nil {
		t.Fatalf("expected unknown outcome to be rejected")
	}

	_, err = module.RecordSignIn.Execute(ctx, commands.RecordSignInEventCommand{
		UserID:     1,
		Identifier: "x",
		Status:     "SUCCESS",
		AuthMode:   "CARRIER_PIGEON",
	})
	if err == nil {
		t.Fatalf("expected unknown auth mode to be rejected")
	}

	event := recordEvent(t, module, 1, "ACCOUNT_LOCKED")
	if event.Status != valueobjects.SignInStatusAccountLocked {
		t.Fatalf("expected ACCOUNT_LOCKED outcome to be recorded, got %s", event.Status)
	}
}
