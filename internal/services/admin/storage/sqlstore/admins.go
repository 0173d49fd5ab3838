package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/id"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// ListAdmins returns operator accounts, optionally limited to one module.
func (s *Store) ListAdmins(ctx context.Context, module storage.AdminModule) ([]storage.AdminAccount, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	query := `SELECT id, email, display_name, module, created_at FROM admin_accounts`
	var args []any
	if module != "" {
		query += ` WHERE module = ?`
		args = append(args, string(module))
	}
	query += ` ORDER BY email`

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var accounts []storage.AdminAccount
	for rows.Next() {
		var a storage.AdminAccount
		var accountModule, createdAt string
		if err := rows.Scan(&a.ID, &a.Email, &a.DisplayName, &accountModule, &createdAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		a.Module = storage.AdminModule(accountModule)
		a.CreatedAt = parseTime(createdAt)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// CreateAdmin inserts an operator account; emails are unique ignoring case.
func (s *Store) CreateAdmin(ctx context.Context, account storage.AdminAccount) (storage.AdminAccount, error) {
	if err := s.ready(ctx); err != nil {
		return storage.AdminAccount{}, err
	}
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	if account.Email == "" {
		return storage.AdminAccount{}, fmt.Errorf("admin email is required")
	}
	accountID, err := id.NewID()
	if err != nil {
		return storage.AdminAccount{}, fmt.Errorf("generate admin id: %w", err)
	}
	account.ID = accountID
	account.CreatedAt = time.Now().UTC()
	_, err = s.exec(ctx, `INSERT INTO admin_accounts (id, email, display_name, module, created_at) VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.Email, strings.TrimSpace(account.DisplayName), string(account.Module), formatTime(account.CreatedAt),
	)
	if err != nil {
		return storage.AdminAccount{}, fmt.Errorf("create admin: %w", s.translate(err))
	}
	return account, nil
}

// CountAdmins returns the number of operator accounts.
func (s *Store) CountAdmins(ctx context.Context) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	var count int64
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM admin_accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// Counts returns directory totals, including operator accounts.
func (s *Store) Counts(ctx context.Context) (venue.Counts, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Counts{}, err
	}
	var counts venue.Counts
	err := s.queryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM clusters),
		(SELECT COUNT(*) FROM venues),
		(SELECT COUNT(*) FROM zones),
		(SELECT COUNT(*) FROM facilities),
		(SELECT COUNT(*) FROM admin_accounts)`).
		Scan(&counts.Clusters, &counts.Venues, &counts.Zones, &counts.Facilities, &counts.Admins)
	if err != nil {
		return venue.Counts{}, fmt.Errorf("count directory: %w", err)
	}
	return counts, nil
}
