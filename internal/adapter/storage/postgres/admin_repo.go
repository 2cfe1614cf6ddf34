package postgres

import (
	"context"
	"fmt"

	"walletguard/internal/core/domain"
)

// AdminRepo implements ports.AdminDirectory over the users table.
type AdminRepo struct {
	pool Pool
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(pool Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// ListActiveAdmins returns every active administrator with an email address.
func (r *AdminRepo) ListActiveAdmins(ctx context.Context) ([]domain.AdminRecipient, error) {
	query := `SELECT id, email, name FROM users
		WHERE role = $1 AND is_active = TRUE AND email <> ''
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, string(domain.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.AdminRecipient
	for rows.Next() {
		var a domain.AdminRecipient
		if err := rows.Scan(&a.UserID, &a.Email, &a.Name); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admins: %w", err)
	}
	return admins, nil
}
