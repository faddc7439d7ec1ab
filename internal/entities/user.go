package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "internal_administrator"
	RoleStoreStaff    Role = "internal_store_staff"
	RoleKitchenStaff  Role = "internal_kitchen_staff"
	RoleDeliveryStaff Role = "internal_delivery_staff"

	// RoleAnonymous is carried by requests without an authenticated principal.
	RoleAnonymous Role = ""
)

var roles = []Role{
	RoleCustomer,
	RoleAdministrator,
	RoleStoreStaff,
	RoleKitchenStaff,
	RoleDeliveryStaff,
}

func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func (r Role) Valid() bool {
	for _, rl := range roles {
		if r == rl {
			return true
		}
	}
	return false
}

// Internal reports whether the role belongs to store personnel.
func (r Role) Internal() bool {
	return r.Valid() && r != RoleCustomer
}

func (r Role) String() string {
	if r == RoleAnonymous {
		return "anonymous"
	}
	return string(r)
}

type User struct {
	ID           string
	FullName     string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUser struct {
	FullName string
	Email    string
	Role     Role
	Password string
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

func (p *Principal) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Principal) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(p)
}
