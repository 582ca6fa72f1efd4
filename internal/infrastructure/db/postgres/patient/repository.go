package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "patient-manager-api/internal/domain/patient"
	"patient-manager-api/internal/infrastructure/db/postgres"
)

// Constraint names from migrations/001_create_patients.sql.
const (
	emailConstraint = "patients_email_key"
	dniConstraint   = "patients_dni_key"
)

// DB is the subset of pgxpool.Pool the repository uses. pgxmock
// implements it for the tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanPatient(row pgx.Row) (*Patient, error) {
	p := new(Patient)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Address,
		&p.Phone,
		&p.DNI,
		&p.BirthDate,

		&p.RegistrationDate,
		&p.LastUpdateDate,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.Patient, error) {
	p, err := r.scanPatient(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchByID(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	return r.fetchOne(ctx, SelectPatientByID, id)
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	return r.fetchOne(ctx, SelectPatientByEmail, email)
}

func (r *Repository) FetchByDNI(ctx context.Context, dni string) (*domain.Patient, error) {
	return r.fetchOne(ctx, SelectPatientByDNI, dni)
}

func (r *Repository) FetchAll(ctx context.Context, page, size int) (*domain.Page, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountPatients).Scan(&total); err != nil {
		return nil, err
	}

	ps, err := r.fetchMany(ctx, SelectPatients, page*size, size)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Page:          page,
		Size:          size,
		TotalElements: total,
		Content:       ps,
	}, nil
}

func (r *Repository) SearchByName(ctx context.Context, fragment string) (domain.Patients, error) {
	return r.fetchMany(ctx, SelectPatientsByName, fragment)
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (domain.Patients, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Patients
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsPatientByEmail, email).Scan(&exists)
	return exists, err
}

func (r *Repository) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsPatientByDNI, dni).Scan(&exists)
	return exists, err
}

func (r *Repository) EmailUsedByOther(ctx context.Context, email string, id domain.ID) (bool, error) {
	var used bool
	err := r.db.QueryRow(ctx, EmailUsedByOther, email, id).Scan(&used)
	return used, err
}

func (r *Repository) DNIUsedByOther(ctx context.Context, dni string, id domain.ID) (bool, error) {
	var used bool
	err := r.db.QueryRow(ctx, DNIUsedByOther, dni, id).Scan(&used)
	return used, err
}

// Save inserts when the entity carries no ID, replaces otherwise. The
// write is a single statement; the store assigns id and stamps the
// timestamps.
func (r *Repository) Save(ctx context.Context, req domain.Patient) (*domain.Patient, error) {
	var row pgx.Row
	if req.ID == uuid.Nil {
		row = r.db.QueryRow(
			ctx,
			InsertPatient,
			req.Name, req.Email, nullable(req.Address), nullable(req.Phone), req.DNI, req.BirthDate,
		)
	} else {
		row = r.db.QueryRow(
			ctx,
			UpdatePatientByID,
			req.Name, req.Email, nullable(req.Address), nullable(req.Phone), req.DNI, req.BirthDate, req.ID,
		)
	}

	p, err := r.scanPatient(row)
	if err != nil {
		if constraint, ok := postgres.UniqueConstraint(err); ok {
			switch constraint {
			case emailConstraint:
				return nil, domain.ErrEmailConflict
			case dniConstraint:
				return nil, domain.ErrDNIConflict
			}
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) Delete(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeletePatientByID, id)
	return err
}
