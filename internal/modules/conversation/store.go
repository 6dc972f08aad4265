// README: Conversation store backed by PostgreSQL.
package conversation

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FindTurns returns up to limit turns for a conversation, newest first,
// excluding the given turn types. Callers wanting chronological order
// reverse the slice themselves.
func (s *Store) FindTurns(ctx context.Context, conversationID string, excludeTypes []string, limit int) ([]Turn, error) {
	if excludeTypes == nil {
		excludeTypes = []string{}
	}
	rows, err := s.db.Query(ctx, `
		SELECT role, content
		FROM conversation_turns
		WHERE conversation_id = $1
		  AND NOT (turn_type = ANY($2))
		ORDER BY created_at DESC
		LIMIT $3`,
		conversationID, excludeTypes, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.Role, &t.Content); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// SaveTurn appends one turn to a conversation.
func (s *Store) SaveTurn(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO conversation_turns (conversation_id, role, turn_type, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.ConversationID, rec.Role, rec.TurnType, rec.Content, rec.CreatedAt,
	)
	return err
}
