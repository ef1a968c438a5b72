package repository

import (
	"context"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = "id, name, email, password, telephone_no, role, created_at, updated_at"

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, password, telephone_no, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.PasswordHash,
		customer.TelephoneNo,
		customer.Role,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", customer.Email, ErrConflict)
		}
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("email", customer.Email),
		)
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PasswordHash,
		&customer.TelephoneNo,
		&customer.Role,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PasswordHash,
		&customer.TelephoneNo,
		&customer.Role,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list customers",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.PasswordHash,
			&customer.TelephoneNo,
			&customer.Role,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, password = $4, telephone_no = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.PasswordHash,
		customer.TelephoneNo,
		customer.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", customer.Email, ErrConflict)
		}
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customer.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("customer %s still holds tickets: %w", id.String(), ErrRelationshipConflict)
		}
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Customer deleted", zap.String("customer_id", id.String()))
	return nil
}
