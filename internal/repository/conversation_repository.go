package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// ConversationFilter captures oversight search parameters.
type ConversationFilter struct {
	Status     *domain.ConversationStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// ConversationRepository encapsulates conversation persistence.
type ConversationRepository interface {
	Update(ctx context.Context, conversation *domain.Conversation) error
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context, filter ConversationFilter) ([]domain.Conversation, error)
	CountByStatus(ctx context.Context) (map[domain.ConversationStatus]int64, error)
}

type conversationRepository struct {
	pool *pgxpool.Pool
}

// NewConversationRepository instantiates repository.
func NewConversationRepository(pool *pgxpool.Pool) ConversationRepository {
	return &conversationRepository{pool: pool}
}

const conversationColumns = `id, participant1_email, participant2_email, status, last_message_content,
        last_message_date, reported_by_email, report_reason, blocked_by_admin, created_at, updated_at`

func (r *conversationRepository) Update(ctx context.Context, conversation *domain.Conversation) error {
	const query = `
        UPDATE conversations SET status=$1, blocked_by_admin=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, conversation.Status, conversation.BlockedByAdmin, conversation.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	query := fmt.Sprintf(`SELECT %s FROM conversations WHERE id=$1`, conversationColumns)
	var conv domain.Conversation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&conv.ID,
		&conv.Participant1Email,
		&conv.Participant2Email,
		&conv.Status,
		&conv.LastMessageContent,
		&conv.LastMessageDate,
		&conv.ReportedByEmail,
		&conv.ReportReason,
		&conv.BlockedByAdmin,
		&conv.CreatedAt,
		&conv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) List(ctx context.Context, filter ConversationFilter) ([]domain.Conversation, error) {
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
		clauses = append(clauses, fmt.Sprintf("(LOWER(participant1_email) LIKE %s OR LOWER(participant2_email) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM conversations WHERE %s ORDER BY last_message_date DESC NULLS LAST LIMIT %d OFFSET %d`,
		conversationColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Conversation
	for rows.Next() {
		var conv domain.Conversation
		if err := rows.Scan(
			&conv.ID,
			&conv.Participant1Email,
			&conv.Participant2Email,
			&conv.Status,
			&conv.LastMessageContent,
			&conv.LastMessageDate,
			&conv.ReportedByEmail,
			&conv.ReportReason,
			&conv.BlockedByAdmin,
			&conv.CreatedAt,
			&conv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, conv)
	}
	return result, rows.Err()
}

func (r *conversationRepository) CountByStatus(ctx context.Context) (map[domain.ConversationStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM conversations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ConversationStatus]int64)
	for rows.Next() {
		var status domain.ConversationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// PrivateMessageRepository lists messages owned by a conversation.
type PrivateMessageRepository interface {
	ListByConversation(ctx context.Context, conversationID string) ([]domain.PrivateMessage, error)
}

type privateMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPrivateMessageRepository instantiates repository.
func NewPrivateMessageRepository(pool *pgxpool.Pool) PrivateMessageRepository {
	return &privateMessageRepository{pool: pool}
}

func (r *privateMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]domain.PrivateMessage, error) {
	const query = `
        SELECT id, conversation_id, sender_email, content, flagged, created_at
        FROM private_messages WHERE conversation_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PrivateMessage
	for rows.Next() {
		var msg domain.PrivateMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.SenderEmail,
			&msg.Content,
			&msg.Flagged,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
