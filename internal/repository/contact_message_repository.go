package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// ContactMessageFilter captures inbox search parameters.
type ContactMessageFilter struct {
	Status     *domain.ContactMessageStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// ContactMessageRepository encapsulates contact-form inbox persistence.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	UpdateStatus(ctx context.Context, id string, status domain.ContactMessageStatus) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter ContactMessageFilter) ([]domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type contactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository instantiates repository.
func NewContactMessageRepository(pool *pgxpool.Pool) ContactMessageRepository {
	return &contactMessageRepository{pool: pool}
}

const contactMessageColumns = `id, full_name, email, phone, subject, message, status, created_at, updated_at`

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (full_name, email, phone, subject, message, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		msg.FullName,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *contactMessageRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactMessageStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE contact_messages SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_messages WHERE id=$1`, contactMessageColumns)
	var msg domain.ContactMessage
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.FullName,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&msg.Message,
		&msg.Status,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) List(ctx context.Context, filter ContactMessageFilter) ([]domain.ContactMessage, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(full_name) LIKE %s OR LOWER(email) LIKE %s OR LOWER(subject) LIKE %s OR LOWER(message) LIKE %s)",
			placeholder, placeholder, placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM contact_messages WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		contactMessageColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.FullName,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.CreatedAt,
			&msg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

func (r *contactMessageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
