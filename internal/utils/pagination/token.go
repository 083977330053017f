package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit is the page size used when a caller passes zero or less.
const DefaultLimit = 20

// MaxLimit caps the page size a caller may ask for.
const MaxLimit = 100

// Cursor points at the last row of a page ordered by (journal date, created at, id) descending.
type Cursor struct {
	JournalDate time.Time
	CreatedAt   time.Time
	ID          string
}

// EncodeToken creates an opaque URL-safe token for c.
func EncodeToken(c Cursor) string {
	tokenStr := strings.Join([]string{c.JournalDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	journalDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (journal date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{JournalDate: journalDate, CreatedAt: createdAt, ID: parts[2]}, nil
}

// Before reports whether a row at c sorts after (is older than) the cursor at, in descending page order.
func (c Cursor) Before(at Cursor) bool {
	if !c.JournalDate.Equal(at.JournalDate) {
		return c.JournalDate.Before(at.JournalDate)
	}
	if !c.CreatedAt.Equal(at.CreatedAt) {
		return c.CreatedAt.Before(at.CreatedAt)
	}
	return c.ID < at.ID
}

// NormalizeLimit clamps limit into [1, MaxLimit], using DefaultLimit for non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
