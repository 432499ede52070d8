package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/pkg/pagination"
	"github.com/campuswell/pulse/pkg/query"
	"github.com/campuswell/pulse/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a user repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

// List returns users newest-first with their assessment rollups.
func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error) {
	page.Normalize(r.pagination)

	total, err := repository.QueryValue[int](ctx, r.db, "SELECT COUNT(*) FROM users")
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	summaries, err := repository.QueryMany(
		ctx, r.db,
		summaryQuery,
		[]any{page.PerPage, page.Offset()},
		scanSummary,
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	result := pagination.NewPageResult(summaries, total, page.Page, page.PerPage)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	if err := validateCommand(&cmd); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO users(id, email, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, first_name, last_name, role, created_at`

	insertArgs := []any{
		uuid.New(),
		cmd.Email,
		cmd.FirstName,
		cmd.LastName,
		cmd.Role,
	}

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanUser)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user created", "id", u.ID, "role", u.Role)
	return &u, nil
}

func validateCommand(cmd *CreateCommand) error {
	cmd.Email = strings.TrimSpace(strings.ToLower(cmd.Email))
	cmd.FirstName = strings.TrimSpace(cmd.FirstName)
	cmd.LastName = strings.TrimSpace(cmd.LastName)

	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return ErrInvalidEmail
	}
	if cmd.FirstName == "" || cmd.LastName == "" {
		return ErrInvalidName
	}

	if cmd.Role == "" {
		cmd.Role = "student"
	}
	if !slices.Contains(ValidRoles, cmd.Role) {
		return ErrInvalidRole
	}

	return nil
}
