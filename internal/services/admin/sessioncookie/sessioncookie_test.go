package sessioncookie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T, now time.Time) *Codec {
	t.Helper()
	codec, err := NewCodec(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	codec.now = func() time.Time { return now }
	return codec
}

func TestNewCodecRejectsShortSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewCodec("short", time.Hour); err == nil {
		t.Fatal("expected short secret error")
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	codec := newTestCodec(t, now)
	session, err := codec.NewSession("admin-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	token, err := codec.Encode(session)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.ID != session.ID || decoded.AdminID != "admin-1" || !decoded.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("decoded = %+v, want %+v", decoded, session)
	}
}

func TestDecodeRejectsTampering(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	codec := newTestCodec(t, now)
	session, _ := codec.NewSession("")
	token, err := codec.Encode(session)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	other, err := NewCodec(strings.Repeat("x", 32), time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	other.now = codec.now
	if _, err := other.Decode(token); !errors.Is(err, ErrInvalid) {
		t.Fatalf("foreign key err = %v, want ErrInvalid", err)
	}
	if _, err := codec.Decode(token + "x"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("tampered err = %v, want ErrInvalid", err)
	}
	if _, err := codec.Decode(""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("empty err = %v, want ErrInvalid", err)
	}
}

func TestDecodeRejectsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	codec := newTestCodec(t, now)
	session, _ := codec.NewSession("")
	token, err := codec.Encode(session)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	codec.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := codec.Decode(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestCookieRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	codec := newTestCodec(t, now)
	session, _ := codec.NewSession("")

	rec := httptest.NewRecorder()
	if err := codec.Write(rec, session, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	got, err := codec.Read(req)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("session id = %q, want %q", got.ID, session.ID)
	}

	cleared := httptest.NewRecorder()
	Clear(cleared, false)
	if c := cleared.Result().Cookies(); len(c) != 1 || c[0].MaxAge >= 0 {
		t.Fatalf("cleared cookies = %+v", c)
	}
}
