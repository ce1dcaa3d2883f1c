package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mh-apps/aora-client/internal/logger"
	"github.com/mh-apps/aora-client/models"
)

type feedCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewFeedCacheRepository(db *DB, logger *logger.Logger) FeedCacheRepository {
	return &feedCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *feedCacheRepository) ReplaceFeed(ctx context.Context, posts []models.Post) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin feed cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteFeedPosts); err != nil {
		r.logger.Err(err).
			Str("func", "feedCacheRepository.ReplaceFeed").
			Msg("failed to clear feed cache")
		return fmt.Errorf("failed to clear feed cache: %w", err)
	}

	if len(posts) > 0 {
		query, args, err := buildFeedInsert(posts, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to build feed insert: %w", err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "feedCacheRepository.ReplaceFeed").
				Int("posts", len(posts)).
				Msg("failed to insert cached posts")
			return fmt.Errorf("failed to cache feed: %w", err)
		}
	}

	return tx.Commit()
}

func (r *feedCacheRepository) LoadFeed(ctx context.Context, limit int) ([]models.Post, error) {
	query, args, err := buildFeedSelect(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "feedCacheRepository.LoadFeed").
			Msg("failed to query cached feed")
		return nil, fmt.Errorf("failed to query cached feed: %w", err)
	}
	defer rows.Close()

	var posts []models.Post

	for rows.Next() {
		var post models.Post
		var creatorID, creatorUsername, creatorAvatarURL sql.NullString

		scanErr := rows.Scan(
			&post.ID,
			&post.Title,
			&post.ThumbnailURL,
			&post.VideoURL,
			&post.Prompt,
			&creatorID,
			&creatorUsername,
			&creatorAvatarURL,
			&post.CreatedAt,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "feedCacheRepository.LoadFeed").
				Msg("failed to scan cached post row")
			return nil, fmt.Errorf("failed to scan cached post row: %w", scanErr)
		}

		if creatorID.Valid && creatorID.String != "" {
			post.Creator = &models.User{
				ID:        creatorID.String,
				Username:  creatorUsername.String,
				AvatarURL: creatorAvatarURL.String,
			}
		}

		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached feed: %w", err)
	}

	return posts, nil
}
