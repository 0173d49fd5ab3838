package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
)

// PutConsoleSession records a console session; replaying an id is a no-op.
func (s *Store) PutConsoleSession(ctx context.Context, session storage.ConsoleSession) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(session.SessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	_, err := s.exec(ctx, `INSERT INTO console_sessions (session_id, admin_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (session_id) DO NOTHING`,
		session.SessionID, session.AdminID, formatTime(session.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put console session: %w", err)
	}
	return nil
}

// GetConsoleSession returns one console session.
func (s *Store) GetConsoleSession(ctx context.Context, sessionID string) (storage.ConsoleSession, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ConsoleSession{}, err
	}
	var (
		session   storage.ConsoleSession
		createdAt string
		revokedAt sql.NullString
	)
	err := s.queryRow(ctx, `SELECT session_id, admin_id, created_at, revoked_at FROM console_sessions WHERE session_id = ?`, sessionID).
		Scan(&session.SessionID, &session.AdminID, &createdAt, &revokedAt)
	if err != nil {
		return storage.ConsoleSession{}, fmt.Errorf("get console session: %w", s.translate(err))
	}
	session.CreatedAt = parseTime(createdAt)
	if revokedAt.Valid && revokedAt.String != "" {
		revoked := parseTime(revokedAt.String)
		session.RevokedAt = &revoked
	}
	return session, nil
}

// RevokeConsoleSession marks a session as ended.
func (s *Store) RevokeConsoleSession(ctx context.Context, sessionID string, revokedAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.exec(ctx, `UPDATE console_sessions SET revoked_at = ? WHERE session_id = ? AND revoked_at IS NULL`,
		formatTime(revokedAt), sessionID)
	if err != nil {
		return fmt.Errorf("revoke console session: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		if _, getErr := s.GetConsoleSession(ctx, sessionID); getErr != nil {
			return getErr
		}
	}
	return nil
}
