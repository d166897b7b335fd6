package classifications

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/scholium-io/linnaeus/internal/content"
	"github.com/scholium-io/linnaeus/internal/inference"
	"github.com/scholium-io/linnaeus/internal/pipeline"
	"github.com/scholium-io/linnaeus/pkg/pagination"
	"github.com/scholium-io/linnaeus/pkg/repository"
)

type repo struct {
	db         *sql.DB
	rt         *pipeline.Runtime
	agent      gaconfig.AgentConfig
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a classification repository implementing the System interface.
// It internally constructs the pipeline runtime from the provided dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	contentSys content.System,
	pipelineCfg pipeline.Config,
) System {
	rt := &pipeline.Runtime{
		Inference: inference.New(agent, logger),
		Content:   contentSys,
		Config:    pipelineCfg,
		Logger:    logger.With("pipeline", "classify"),
	}
	return &repo{
		db:         db,
		rt:         rt,
		agent:      agent,
		logger:     logger.With("system", "classifications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[Classification], error) {
	page.Normalize(r.pagination)

	countQ := "SELECT COUNT(*) FROM classifications"
	listQ := fmt.Sprintf(`
		SELECT %s FROM classifications
		ORDER BY classified_at DESC
		LIMIT $1 OFFSET $2`, projection)
	countArgs := []any{}
	listArgs := []any{page.PageSize, page.Offset()}

	if page.Search != nil {
		countQ = `
			SELECT COUNT(*) FROM classifications
			WHERE reasoning ILIKE $1 OR paper_title ILIKE $1`
		listQ = fmt.Sprintf(`
			SELECT %s FROM classifications
			WHERE reasoning ILIKE $1 OR paper_title ILIKE $1
			ORDER BY classified_at DESC
			LIMIT $2 OFFSET $3`, projection)

		pattern := "%" + *page.Search + "%"
		countArgs = []any{pattern}
		listArgs = []any{pattern, page.PageSize, page.Offset()}
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count classifications: %w", err)
	}

	items, err := repository.QueryMany(ctx, r.db, listQ, listArgs, scanClassification)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Classification, error) {
	q := fmt.Sprintf("SELECT %s FROM classifications WHERE id = $1", projection)

	c, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Classify(ctx context.Context, input content.Input) (*Classification, error) {
	result, err := pipeline.Execute(ctx, r.rt, input)
	if err != nil {
		return nil, fmt.Errorf("classify paper: %w", err)
	}

	disciplinesJSON, err := json.Marshal(result.Disciplines)
	if err != nil {
		return nil, fmt.Errorf("marshal disciplines: %w", err)
	}

	var diagnosticsJSON []byte
	if len(result.Diagnostics) > 0 {
		if diagnosticsJSON, err = json.Marshal(result.Diagnostics); err != nil {
			return nil, fmt.Errorf("marshal diagnostics: %w", err)
		}
	}

	insertQ := fmt.Sprintf(`
		INSERT INTO classifications(
			id, disciplines, confidence_score, reasoning, paper_title,
			paper_sections, source_file_id, source_content_id, diagnostics,
			model_name, provider_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, projection)

	insertArgs := []any{
		result.ID,
		disciplinesJSON,
		result.ConfidenceScore,
		result.Reasoning,
		result.PaperTitle,
		result.PaperSections,
		input.FileID,
		input.StructuredContentID,
		diagnosticsJSON,
		r.agent.Model.Name,
		r.agent.Provider.Name,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Classification, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanClassification)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("paper classified",
		"id", c.ID,
		"disciplines", len(c.Disciplines),
		"confidence", c.ConfidenceScore,
	)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM classifications WHERE id = $1",
			id,
		)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("classification deleted", "id", id)
	return nil
}
