package hours

import "context"

type Repository interface {
	Load(ctx context.Context) (BusinessHours, error)
	Save(ctx context.Context, b BusinessHours) error
}
