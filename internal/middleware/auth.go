package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	SessionContextKey contextKey = "session"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "sg_session"

// SessionTokenHeader echoes the session token for clients without a cookie jar.
const SessionTokenHeader = "X-Session-Token"

// SessionMiddleware gives every request an anonymous wizard session
type SessionMiddleware struct {
	authService  *auth.Service
	secureCookie bool
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(authService *auth.Service, secureCookie bool) *SessionMiddleware {
	return &SessionMiddleware{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Attach validates the session cookie or bearer token and adds the session id
// to the request context. Missing or invalid sessions are replaced by a new one.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID, ok := m.existingSession(r); ok {
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sessionID)))
			return
		}

		sessionID := m.authService.NewSessionID()
		token, err := m.authService.GenerateToken(sessionID)
		if err != nil {
			log.WithError(err).Error("Failed to issue session token")
			http.Error(w, "Failed to start session", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.authService.TokenTTL().Seconds()),
			HttpOnly: true,
			Secure:   m.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(SessionTokenHeader, token)

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sessionID)))
	})
}

func (m *SessionMiddleware) existingSession(r *http.Request) (string, bool) {
	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else if header, err := m.authService.ExtractTokenFromHeader(r.Header.Get("Authorization")); err == nil {
		token = header
	}
	if token == "" {
		return "", false
	}

	claims, err := m.authService.ValidateToken(token)
	if err != nil {
		log.WithError(err).Debug("Discarding session token")
		return "", false
	}
	return claims.SessionID, true
}

// WithSession stores a session id in a context
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionContextKey, sessionID)
}

// SessionFromContext extracts the session id from request context
func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionContextKey).(string)
	return sessionID, ok && sessionID != ""
}

// AdminMiddleware guards the consultant dashboard with HTTP Basic auth
type AdminMiddleware struct {
	authService  *auth.Service
	user         string
	passwordHash string
}

// NewAdminMiddleware creates a new admin middleware. An empty hash disables admin access.
func NewAdminMiddleware(authService *auth.Service, user, passwordHash string) *AdminMiddleware {
	return &AdminMiddleware{
		authService:  authService,
		user:         user,
		passwordHash: passwordHash,
	}
}

// RequireAdmin checks Basic credentials against the configured user and bcrypt hash
func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.passwordHash == "" {
			http.Error(w, "Admin access is disabled", http.StatusForbidden)
			return
		}

		user, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="sahigaadi-admin"`)
			http.Error(w, "Authorization required", http.StatusUnauthorized)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) == 1
		if !userOK || !m.authService.CheckPassword(password, m.passwordHash) {
			log.WithField("user", user).Warn("Rejected admin credentials")
			w.Header().Set("WWW-Authenticate", `Basic realm="sahigaadi-admin"`)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
