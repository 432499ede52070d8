package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/pkg/pagination"
)

// System defines the public contract for user registry operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, cmd CreateCommand) (*User, error)
}
