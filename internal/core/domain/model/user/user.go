// Package user provides the User entity owning orders. Users carry contact
// details, role, verification/blocking state, and activity counters.
package user

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// User represents an account that owns orders. One user owns zero-or-more
// orders; deletion cascades to them at the storage layer.
type User struct {
	id int64

	lastName  string // nom
	firstName string // prenom
	email     string
	password  string // opaque hash, never inspected here
	phone     string
	role      string
	address   string // adresse de livraison

	// faceDescriptor is an opaque string produced by the face-recognition
	// front end; the backend only stores it.
	faceDescriptor string
	photo          string

	blocked          bool
	verified         bool
	verificationCode string
	resetCode        string

	lastConnection  *time.Time
	connectionCount int
	actionCount     int
	blockCount      int

	dateOfBirth *time.Time
	creditLimit *float64

	isConstructed bool
}

// NewUser creates a user account. Email is the only hard requirement; the
// remaining contact fields are normalized, and a fresh verification code is
// issued for the account.
func NewUser(lastName, firstName, email, password, phone, role, address string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailIsRequired
	}

	return &User{
		lastName:         strings.TrimSpace(lastName),
		firstName:        strings.TrimSpace(firstName),
		email:            email,
		password:         password,
		phone:            strings.TrimSpace(phone),
		role:             strings.TrimSpace(role),
		address:          strings.TrimSpace(address),
		verificationCode: uuid.NewString(),
		isConstructed:    true,
	}, nil
}

// RestoreUser reconstructs a persisted user with its full state.
// Used by persistence adapters only.
func RestoreUser(
	id int64,
	lastName, firstName, email, password, phone, role, address string,
	faceDescriptor, photo string,
	blocked, verified bool,
	verificationCode, resetCode string,
	lastConnection *time.Time,
	connectionCount, actionCount, blockCount int,
	dateOfBirth *time.Time,
	creditLimit *float64,
) (*User, error) {
	u, err := NewUser(lastName, firstName, email, password, phone, role, address)
	if err != nil {
		return nil, err
	}

	u.id = id
	u.faceDescriptor = faceDescriptor
	u.photo = photo
	u.blocked = blocked
	u.verified = verified
	u.verificationCode = verificationCode
	u.resetCode = resetCode
	u.lastConnection = lastConnection
	u.connectionCount = connectionCount
	u.actionCount = actionCount
	u.blockCount = blockCount
	u.dateOfBirth = dateOfBirth
	u.creditLimit = creditLimit
	return u, nil
}

// Validate ensures the User was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64                  { return u.id }
func (u *User) LastName() string           { return u.lastName }
func (u *User) FirstName() string          { return u.firstName }
func (u *User) Email() string              { return u.email }
func (u *User) Password() string           { return u.password }
func (u *User) Phone() string              { return u.phone }
func (u *User) Role() string               { return u.role }
func (u *User) Address() string            { return u.address }
func (u *User) FaceDescriptor() string     { return u.faceDescriptor }
func (u *User) Photo() string              { return u.photo }
func (u *User) IsBlocked() bool            { return u.blocked }
func (u *User) IsVerified() bool           { return u.verified }
func (u *User) VerificationCode() string   { return u.verificationCode }
func (u *User) ResetCode() string          { return u.resetCode }
func (u *User) LastConnection() *time.Time { return u.lastConnection }
func (u *User) ConnectionCount() int       { return u.connectionCount }
func (u *User) ActionCount() int           { return u.actionCount }
func (u *User) BlockCount() int            { return u.blockCount }
func (u *User) DateOfBirth() *time.Time    { return u.dateOfBirth }
func (u *User) CreditLimit() *float64      { return u.creditLimit }

