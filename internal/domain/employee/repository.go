package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee ordered by employee id
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUID(ctx context.Context, uid string) (Employee, error)
	Insert(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	DeleteByID(ctx context.Context, id string) error
}
