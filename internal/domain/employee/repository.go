package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the profile for a login identity.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error

	// CountByJoiningYear counts employees whose date_of_joining falls in
	// the given calendar year. Feeds the login-ID serial; see the
	// credential service for the race this implies.
	CountByJoiningYear(ctx context.Context, year int) (int64, error)
}
