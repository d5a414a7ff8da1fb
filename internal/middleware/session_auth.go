package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// SessionIDKey is the gin context key holding the verified session ID
const SessionIDKey = "session_id"

// SessionAuth issues and verifies HS256 tokens that bind a caller to one dashboard session
type SessionAuth struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionAuth creates session token middleware. An empty secret is replaced by
// a random one, which invalidates every token on restart.
func NewSessionAuth(secret, issuer string, ttl time.Duration) (*SessionAuth, error) {
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		log.Warn().Msg("SESSION_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &SessionAuth{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token whose subject is sessionID
func (a *SessionAuth) IssueToken(sessionID string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// VerifyToken checks signature, issuer and expiry and returns the session ID the token is bound to
func (a *SessionAuth) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// RequireSession requires a bearer token whose subject equals the :id path parameter
func (a *SessionAuth) RequireSession() gin.HandlerFunc {
	return a.requireSession(false)
}

// RequireStreamSession is RequireSession that also accepts ?token= for EventSource clients,
// which cannot set headers
func (a *SessionAuth) RequireStreamSession() gin.HandlerFunc {
	return a.requireSession(true)
}

func (a *SessionAuth) requireSession(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = strings.TrimPrefix(c.Query("token"), "Bearer ")
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "No session token provided",
			})
			c.Abort()
			return
		}

		sessionID, err := a.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid or expired session token",
				"details": err.Error(),
			})
			c.Abort()
			return
		}

		if sessionID != c.Param("id") {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Token does not belong to this session",
			})
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
