package middlewares

import (
	"context"
	"net/http"

	"github.com/wordbook/backend/internal/session"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie holding the opaque session ID
const SessionCookieName = "wordbook_session"

const sessionKey contextKey = "session"

// SessionStore is the subset of the session store the middleware needs
type SessionStore interface {
	Create() *session.Session
	Get(id string) (*session.Session, bool)
}

// SessionMiddleware resolves the caller's session from its cookie.
// Unknown or expired IDs start a fresh session and the cookie is (re)issued.
func SessionMiddleware(store SessionStore, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sess, _ = store.Get(cookie.Value)
			}

			if sess == nil {
				sess = store.Create()
				http.SetCookie(w, NewSessionCookie(sess.ID(), secure))
				logger.Debug("session started",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("session_id", sess.ID()),
				)
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the session attached by SessionMiddleware, or nil
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// NewSessionCookie builds the session cookie for id
func NewSessionCookie(id string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that tells the browser to drop the session
func ExpiredSessionCookie(secure bool) *http.Cookie {
	cookie := NewSessionCookie("", secure)
	cookie.MaxAge = -1
	return cookie
}
