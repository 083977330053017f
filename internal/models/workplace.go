package models

import "time"

// Workplace is the row shape of the workplaces table.
type Workplace struct {
	WorkplaceID         string `db:"workplace_id"`
	Name                string `db:"name"`
	Description         string `db:"description"`
	DefaultCurrencyCode string `db:"default_currency_code"`
	IsActive            bool   `db:"is_active"`
	AuditFields
}

// UserWorkplace is a row of the user_workplaces join table.
type UserWorkplace struct {
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"` // joined from users
	WorkplaceID string    `db:"workplace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
