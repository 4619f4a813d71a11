// Package repository defines the persistence contracts the domain depends on.
// Implementations live in the infra layer; the domain only sees interfaces
// and a small set of sentinel errors.
package repository

import (
	"context"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	"github.com/khaledhussein957/my-websote-sub000/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the contract for persisting and querying accounts.
//
// The unique indexes on email and phone are the source of truth for
// duplicate prevention: Create and Update must translate a store-level
// unique-constraint violation into the domain's conflict error, because two
// concurrent registrations can both pass any application-level pre-check.
type AccountRepository interface {
	// Create persists a new account. Returns the domain conflict error if
	// the email or phone is already taken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByIdentifier matches the identifier against the email OR phone
	// column in a single query, regardless of which form was supplied.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// FindByEmailOrPhone is the duplicate-account pre-check: it matches an
	// account holding either the given email or the given phone.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Account, error)

	// FindByResetCode matches an account whose reset code equals code and
	// whose expiry is strictly after now. Expiry is enforced here, at query
	// time; expired codes behave as if they do not exist.
	FindByResetCode(ctx context.Context, code string, now time.Time) (*entity.Account, error)

	// Update persists mutated account fields. Uniqueness of email and phone
	// is re-validated by the store's unique indexes, which exclude the
	// record's own row by definition.
	Update(ctx context.Context, account *entity.Account) error

	// SetResetCode stores a reset code and its expiry on the account,
	// overwriting any previous code.
	SetResetCode(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error

	// UpdatePasswordAndClearReset stores the new password hash and clears
	// the reset code and expiry in a single statement, so a consumed code
	// can never survive a successful password change.
	UpdatePasswordAndClearReset(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the account.
	Delete(ctx context.Context, id uuid.UUID) error
}
