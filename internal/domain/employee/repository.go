package employee

import "context"

type Repository interface {
	// LoadAll reads every stored record in stable (file-name) order. A
	// single unreadable record fails the whole load; partial rosters are
	// never returned.
	LoadAll(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, e Employee) error
	Delete(ctx context.Context, fileKey string) error
	Exists(ctx context.Context, fileKey string) (bool, error)
}
