package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/Mulith/create-video-short/application/ports/outbound"
	"github.com/Mulith/create-video-short/domain"
)

// postgresContentStore reads and writes the content_items schema owned by
// the wider platform. Only the video status fields are ever written from
// here.
type postgresContentStore struct {
	db     *sql.DB
	logger outbound.LoggerPort
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresContentStore(db *sql.DB, logger outbound.LoggerPort) outbound.ContentStorePort {
	return &postgresContentStore{
		db:     db,
		logger: logger,
	}
}

func (s *postgresContentStore) GetContentItem(ctx context.Context, id string) (*domain.ContentItem, error) {
	query, args, err := psql.
		Select("id", "title", "script", "video_status", "video_file_path", "updated_at").
		From("content_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	item := &domain.ContentItem{}
	var filePath sql.NullString
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.Title, &item.Script, &item.VideoStatus, &filePath, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query content item: %w", err)
	}
	if filePath.Valid {
		item.VideoFilePath = &filePath.String
	}

	scenes, err := s.getScenes(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Scenes = scenes

	return item, nil
}

// getScenes loads a content item's scenes with their rendered assets in
// one joined query, scenes ordered ascending by scene number.
func (s *postgresContentStore) getScenes(ctx context.Context, contentID string) ([]domain.Scene, error) {
	query, args, err := psql.
		Select("s.id", "s.scene_number", "s.narration_text",
			"s.start_time_seconds", "s.end_time_seconds",
			"a.id", "a.status", "a.url").
		From("scenes s").
		LeftJoin("rendered_assets a ON a.scene_id = s.id").
		Where(sq.Eq{"s.content_item_id": contentID}).
		OrderBy("s.scene_number ASC", "a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build scenes query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query scenes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	scenes := make([]domain.Scene, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			scene       domain.Scene
			assetID     sql.NullString
			assetStatus sql.NullString
			assetURL    sql.NullString
		)
		if err := rows.Scan(&scene.ID, &scene.SceneNumber, &scene.NarrationText,
			&scene.StartTimeSeconds, &scene.EndTimeSeconds,
			&assetID, &assetStatus, &assetURL); err != nil {
			return nil, fmt.Errorf("scan scene row: %w", err)
		}

		pos, seen := index[scene.ID]
		if !seen {
			pos = len(scenes)
			index[scene.ID] = pos
			scenes = append(scenes, scene)
		}

		if assetID.Valid {
			scenes[pos].Assets = append(scenes[pos].Assets, domain.RenderedAsset{
				ID:     assetID.String,
				Status: domain.AssetStatus(assetStatus.String),
				URL:    assetURL.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scene rows: %w", err)
	}

	return scenes, nil
}

func (s *postgresContentStore) MarkVideoCompleted(ctx context.Context, id string, storagePath string) error {
	query, args, err := psql.
		Update("content_items").
		Set("video_status", domain.VideoStatusCompleted).
		Set("video_file_path", storagePath).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build status update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update video status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update video status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	s.logger.InfoWithFields("video status updated", map[string]interface{}{
		"content_id": id,
		"status":     domain.VideoStatusCompleted,
		"path":       storagePath,
	})

	return nil
}
