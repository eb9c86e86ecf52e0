package domain

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/entities"
)

// Login validates the form locally, then exchanges it for a session.
func (u *Usecase) Login(ctx context.Context, draft entities.LoginDraft) (entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	draft.Email = strings.TrimSpace(draft.Email)
	if err := u.check(draft); err != nil {
		return u.authFailed(err), err
	}

	u.setAuth(entities.AuthResult{State: entities.AuthSubmitting})
	if _, err := u.repo.Login(ctx, draft.Email, draft.Password); err != nil {
		u.log.Warnw("login failed", "err", err)
		if errors.Is(err, entities.ErrNoToken) {
			err = &entities.ActionError{Message: msgNoToken, Err: err}
		} else {
			err = actionError(err, msgLoginFailed)
		}
		return u.authFailed(err), err
	}

	u.store.Reset()
	res := entities.AuthResult{State: entities.AuthSuccess, Next: entities.ScreenDashboard}
	u.setAuth(res)
	return res, nil
}

// Register validates the form locally, then creates the account. The user
// logs in afterwards.
func (u *Usecase) Register(ctx context.Context, draft entities.RegisterDraft) (entities.AuthResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	draft.Username = strings.TrimSpace(draft.Username)
	draft.Email = strings.TrimSpace(draft.Email)
	if err := u.check(draft); err != nil {
		return u.authFailed(err), err
	}

	u.setAuth(entities.AuthResult{State: entities.AuthSubmitting})
	if err := u.repo.Register(ctx, draft.Username, draft.Email, draft.Password); err != nil {
		u.log.Warnw("registration failed", "err", err)
		err = actionError(err, msgRegisterFailed)
		return u.authFailed(err), err
	}

	res := entities.AuthResult{State: entities.AuthSuccess, Next: entities.ScreenLogin}
	u.setAuth(res)
	return res, nil
}

// Logout ends the session. Local state is dropped even when the backend call
// fails.
func (u *Usecase) Logout(ctx context.Context) entities.AuthResult {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.Logout(ctx); err != nil {
		u.log.Warnw("logout call failed, session cleared locally", "err", err)
	}
	u.store.Reset()

	res := entities.AuthResult{State: entities.AuthIdle, Next: entities.ScreenLogin}
	u.setAuth(res)
	return res
}

// AuthState returns the current step of the auth flow and the last message.
func (u *Usecase) AuthState() entities.AuthResult {
	u.authMu.Lock()
	defer u.authMu.Unlock()
	return u.auth
}

func (u *Usecase) setAuth(res entities.AuthResult) {
	u.authMu.Lock()
	u.auth = res
	u.authMu.Unlock()
}

// authFailed reports a failed submission and returns the flow to idle with
// the message kept for display.
func (u *Usecase) authFailed(err error) entities.AuthResult {
	msg := err.Error()
	u.setAuth(entities.AuthResult{State: entities.AuthIdle, Message: msg})
	return entities.AuthResult{State: entities.AuthFailed, Message: msg}
}
