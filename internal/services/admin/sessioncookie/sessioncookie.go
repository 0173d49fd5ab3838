// Package sessioncookie carries the console session id in a signed HS256 JWT
// cookie.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/venuedesk/internal/platform/id"
)

const (
	// CookieName holds the signed console session token.
	CookieName = "vd_console_session"
	// DefaultTTL bounds a console session.
	DefaultTTL = 12 * time.Hour
	// issuer marks tokens minted by this console.
	issuer = "venuedesk-admin"
	// minSecretLength rejects trivially guessable signing keys.
	minSecretLength = 32
)

var (
	// ErrInvalid reports a token that fails signature or claim checks.
	ErrInvalid = errors.New("console session token is invalid")
	// ErrExpired reports a token past its expiry.
	ErrExpired = errors.New("console session token is expired")
)

// Session identifies one operator console session.
type Session struct {
	ID        string
	AdminID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id,omitempty"`
}

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec. secret must be at least 32 bytes.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// NewSession starts a session for adminID, which may be empty when no
// identity provider is configured.
func (c *Codec) NewSession(adminID string) (Session, error) {
	sessionID, err := id.NewID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := c.now().UTC().Truncate(time.Second)
	return Session{
		ID:        sessionID,
		AdminID:   strings.TrimSpace(adminID),
		IssuedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}, nil
}

// Encode signs session.
func (c *Codec) Encode(session Session) (string, error) {
	if strings.TrimSpace(session.ID) == "" {
		return "", errors.New("session id is required")
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		AdminID: session.AdminID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Decode verifies token and returns its session.
func (c *Codec) Decode(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrInvalid
	}
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrExpired
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(claims.ID) == "" {
		return Session{}, ErrInvalid
	}
	session := Session{ID: claims.ID, AdminID: claims.AdminID}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return session, nil
}

// Read decodes the session cookie on r.
func (c *Codec) Read(r *http.Request) (Session, error) {
	if r == nil {
		return Session{}, ErrInvalid
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, ErrInvalid
	}
	return c.Decode(cookie.Value)
}

// Write sets the session cookie.
func (c *Codec) Write(w http.ResponseWriter, session Session, secure bool) error {
	token, err := c.Encode(session)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
