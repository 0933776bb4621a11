package actions

import (
	"context"

	"github.com/carson-networks/budget-bloom/internal/storage"
)

// IAction is a unit of mutation run by the operator against a staging writer.
// Returning an error rolls the writer back.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
