package store

import (
	"context"

	"finboard/internal/backend"
	"finboard/internal/core"
)

const loginFailedMessage = "Login failed"

type (
	// Login authenticates against the backend after its simulated delay.
	Login struct {
		Email    string
		Password string
	}

	// Logout ends the session. Both of its outcomes leave the session
	// logged out.
	Logout struct{}

	// UpdateProfile merges a partial profile into the current user. It is a
	// no-op while logged out.
	UpdateProfile struct {
		Patch core.UserPatch
	}

	// ClearError resets the session error and nothing else.
	ClearError struct{}

	loginPending   struct{}
	loginFulfilled struct{ user core.User }
	loginRejected  struct{ message string }

	logoutPending   struct{}
	logoutFulfilled struct{}
	logoutRejected  struct{}
)

func (Login) ActionType() string           { return "user/login" }
func (Logout) ActionType() string          { return "user/logout" }
func (UpdateProfile) ActionType() string   { return "user/updateProfile" }
func (ClearError) ActionType() string      { return "user/clearError" }
func (loginPending) ActionType() string    { return "user/login/pending" }
func (loginFulfilled) ActionType() string  { return "user/login/fulfilled" }
func (loginRejected) ActionType() string   { return "user/login/rejected" }
func (logoutPending) ActionType() string   { return "user/logout/pending" }
func (logoutFulfilled) ActionType() string { return "user/logout/fulfilled" }
func (logoutRejected) ActionType() string  { return "user/logout/rejected" }

func (Login) pending() Action { return loginPending{} }

func (a Login) run(ctx context.Context, api backend.API) (Action, error) {
	user, err := api.Login(ctx, core.Credentials{Email: a.Email, Password: a.Password})
	if err != nil {
		return loginRejected{message: messageOr(err, loginFailedMessage)}, err
	}
	return loginFulfilled{user: user}, nil
}

func (Logout) pending() Action { return logoutPending{} }

func (Logout) run(ctx context.Context, api backend.API) (Action, error) {
	if err := api.Logout(ctx); err != nil {
		return logoutRejected{}, err
	}
	return logoutFulfilled{}, nil
}

func (a UpdateProfile) apply(s State) State {
	if s.User.User == nil {
		return s
	}
	u := a.Patch.Apply(*s.User.User)
	s.User.User = &u
	return s
}

func (ClearError) apply(s State) State {
	s.User.Error = ""
	return s
}

func (loginPending) apply(s State) State {
	s.User.Loading = true
	s.User.Error = ""
	return s
}

func (a loginFulfilled) apply(s State) State {
	u := a.user
	s.User.User = &u
	s.User.IsAuthenticated = true
	s.User.Loading = false
	s.User.Error = ""
	return s
}

// A failed login also drops any user left from an earlier session so that
// IsAuthenticated and User never disagree.
func (a loginRejected) apply(s State) State {
	s.User.User = nil
	s.User.IsAuthenticated = false
	s.User.Loading = false
	s.User.Error = a.message
	return s
}

func (logoutPending) apply(s State) State {
	s.User.Loading = true
	return s
}

func (logoutFulfilled) apply(s State) State {
	return loggedOut(s)
}

func (logoutRejected) apply(s State) State {
	return loggedOut(s)
}

func loggedOut(s State) State {
	s.User.User = nil
	s.User.IsAuthenticated = false
	s.User.Loading = false
	return s
}
