package entities

// Session is the credential proving an authenticated user to the backend.
type Session struct {
	Token string
	// Cookies holds backend cookies in Cookie header form ("a=1; b=2").
	Cookies string
	// UserID is taken from the token claims; zero when unknown.
	UserID int64
}

// Authenticated reports whether any credential is present.
func (s Session) Authenticated() bool {
	return s.Token != "" || s.Cookies != ""
}

// AuthState is a step of the login/register flow.
type AuthState string

const (
	AuthIdle       AuthState = "idle"
	AuthSubmitting AuthState = "submitting"
	AuthSuccess    AuthState = "success"
	AuthFailed     AuthState = "failed"
)

// Screen names where the client navigates after an auth action.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
)

// AuthResult is the outcome of a submitted auth form.
type AuthResult struct {
	State   AuthState
	Next    Screen
	Message string
}
