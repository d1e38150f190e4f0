package repository

import (
	"context"
	"fmt"
)

// ToggleLike переключает отметку "нравится" пары (user, post) и возвращает
// новое состояние: true — отметка поставлена, false — снята.
func (s *Storage) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	return s.toggleReaction(ctx, "post_likes", userID, postID)
}

// ToggleFavorite переключает отметку "избранное" пары (user, post) и возвращает
// новое состояние: true — отметка поставлена, false — снята.
func (s *Storage) ToggleFavorite(ctx context.Context, userID, postID int64) (bool, error) {
	return s.toggleReaction(ctx, "post_favorites", userID, postID)
}

// toggleReaction выполняет переключение в одной транзакции: сначала DELETE,
// при отсутствии строки — INSERT ... ON CONFLICT DO NOTHING. Составной
// первичный ключ (user_id, post_id) сериализует конкурентные переключения:
// двойной вставки не бывает, а проигравший гонку INSERT всё равно сообщает
// фактическое состояние строки.
func (s *Storage) toggleReaction(ctx context.Context, table string, userID, postID int64) (bool, error) {
	op := "storage.toggleReaction." + table
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if deleted > 0 {
		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO `+table+` (user_id, post_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
