package patient

import (
	"context"
)

// Repository is the store contract the service consumes. Fetch methods
// return (nil, nil) when no row matches. Save inserts when the draft
// carries no ID and replaces otherwise; the store stamps the timestamps
// and enforces the unique constraints on email and dni.
type Repository interface {
	Save(ctx context.Context, p Patient) (*Patient, error)
	FetchByID(ctx context.Context, id ID) (*Patient, error)
	FetchByEmail(ctx context.Context, email string) (*Patient, error)
	FetchByDNI(ctx context.Context, dni string) (*Patient, error)
	FetchAll(ctx context.Context, page, size int) (*Page, error)
	SearchByName(ctx context.Context, fragment string) (Patients, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)
	EmailUsedByOther(ctx context.Context, email string, id ID) (bool, error)
	DNIUsedByOther(ctx context.Context, dni string, id ID) (bool, error)
	Delete(ctx context.Context, id ID) error
}
