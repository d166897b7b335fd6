package content

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/scholium-io/linnaeus/pkg/repository"
	"github.com/scholium-io/linnaeus/pkg/storage"
)

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates a content repository implementing the System interface.
func New(db *sql.DB, store storage.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		storage: store,
		logger:  logger.With("system", "content"),
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, maxUploadSize)
}

func (r *repo) Resolve(ctx context.Context, in Input) (*Source, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.FileID != nil {
		return r.resolveFile(ctx, *in.FileID)
	}
	return r.resolveStructured(ctx, *in.StructuredContentID)
}

func (r *repo) resolveFile(ctx context.Context, id uuid.UUID) (*Source, error) {
	f, err := r.FindFile(ctx, id)
	if err != nil {
		return nil, err
	}

	blob, err := r.storage.Download(ctx, f.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: blob %s", ErrNotFound, f.StorageKey)
		}
		return nil, fmt.Errorf("download file %s: %w", id, err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", id, err)
	}

	r.logger.Info("resolved file input", "file_id", id, "size_bytes", len(data))
	return &Source{Kind: SourceRaw, Raw: data}, nil
}

func (r *repo) resolveStructured(ctx context.Context, id uuid.UUID) (*Source, error) {
	overviewQ := "SELECT title FROM content_overviews WHERE id = $1"

	var title *string
	if err := r.db.QueryRowContext(ctx, overviewQ, id).Scan(&title); err != nil {
		return nil, repository.MapError(err,
			fmt.Errorf("%w: content overview %s", ErrNotFound, id),
			ErrDuplicate,
		)
	}

	sectionsQ := `
		SELECT heading, body, position
		FROM content_sections
		WHERE overview_id = $1
		ORDER BY position ASC`

	sections, err := repository.QueryMany(ctx, r.db, sectionsQ, []any{id}, scanPayloadSection)
	if err != nil {
		return nil, fmt.Errorf("query content sections %s: %w", id, err)
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: content overview %s has no sections", ErrNotFound, id)
	}

	r.logger.Info("resolved structured input", "overview_id", id, "sections", len(sections))
	return &Source{
		Kind: SourceStructured,
		Structured: &Payload{
			Title:    title,
			Sections: sections,
		},
	}, nil
}

func (r *repo) FindFile(ctx context.Context, id uuid.UUID) (*File, error) {
	q := `
		SELECT id, filename, content_type, size_bytes, page_count, storage_key, uploaded_at
		FROM files
		WHERE id = $1`

	f, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanFile)
	if err != nil {
		return nil, repository.MapError(err, fmt.Errorf("%w: file %s", ErrNotFound, id), ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Upload(ctx context.Context, cmd UploadCommand) (*File, error) {
	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload file blob: %w", err)
	}

	q := `
		INSERT INTO files(id, filename, content_type, size_bytes, page_count, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, content_type, size_bytes, page_count, storage_key, uploaded_at`

	insertArgs := []any{
		id,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
	}

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (File, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanFile)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("register file: %w", err)
	}

	r.logger.Info("file uploaded", "id", f.ID, "filename", f.Filename)
	return &f, nil
}

func (r *repo) DeleteFile(ctx context.Context, id uuid.UUID) error {
	f, err := r.FindFile(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM files WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, fmt.Errorf("%w: file %s", ErrNotFound, id), ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, f.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", f.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("file deleted", "id", id)
	return nil
}

func scanFile(s repository.Scanner) (File, error) {
	var f File
	err := s.Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.SizeBytes,
		&f.PageCount,
		&f.StorageKey,
		&f.UploadedAt,
	)
	return f, err
}

func scanPayloadSection(s repository.Scanner) (PayloadSection, error) {
	var ps PayloadSection
	err := s.Scan(&ps.Heading, &ps.Body, &ps.Position)
	return ps, err
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("papers/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "paper"
	}
	return url.PathEscape(name)
}
