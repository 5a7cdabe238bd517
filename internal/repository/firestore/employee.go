package firestore

import (
	"context"
	"errors"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type employeeRepositoryImpl struct {
	client *fs.Client
}

func NewEmployeeRepository(client *fs.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

func (r *employeeRepositoryImpl) collect(iter *fs.DocumentIterator) ([]employee.Employee, error) {
	defer iter.Stop()

	employees := []employee.Employee{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read employee documents: %w", err)
		}

		var d employeeDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode employee document %s: %w", doc.Ref.ID, err)
		}
		employees = append(employees, d.toEmployee(doc.Ref.ID))
	}
	return employees, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := r.client.Collection(employeeCollection).OrderBy("employeeid", fs.Asc)
	return r.collect(query.Documents(ctx))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	doc, err := r.client.Collection(employeeCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	var d employeeDoc
	if err := doc.DataTo(&d); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to decode employee document %s: %w", id, err)
	}
	return d.toEmployee(doc.Ref.ID), nil
}

// GetByUID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	query := r.client.Collection(employeeCollection).Where("uid", "==", uid).Limit(1)
	found, err := r.collect(query.Documents(ctx))
	if err != nil {
		return employee.Employee{}, err
	}
	if len(found) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return found[0], nil
}

// Insert implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Insert(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	col := r.client.Collection(employeeCollection)
	ref := col.NewDoc()
	if newEmployee.ID != "" {
		ref = col.Doc(newEmployee.ID)
	}

	if _, err := ref.Create(ctx, employeeDocOf(newEmployee)); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee document: %w", err)
	}

	newEmployee.ID = ref.ID
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	ref := r.client.Collection(employeeCollection).Doc(emp.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *fs.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			return err
		}
		return tx.Set(ref, employeeDocOf(emp))
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee %s: %w", emp.ID, err)
	}
	return nil
}

// DeleteByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	_, err := r.client.Collection(employeeCollection).Doc(id).Delete(ctx, fs.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return nil
}
