package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// User is a Harvest user record.
type User struct {
	ID                           int64    `json:"id"`
	FirstName                    string   `json:"first_name"`
	LastName                     string   `json:"last_name"`
	Email                        string   `json:"email"`
	Telephone                    string   `json:"telephone"`
	Timezone                     string   `json:"timezone"`
	HasAccessToAllFutureProjects bool     `json:"has_access_to_all_future_projects"`
	IsContractor                 bool     `json:"is_contractor"`
	IsActive                     bool     `json:"is_active"`
	WeeklyCapacity               int      `json:"weekly_capacity"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate"`
	CostRate                     *float64 `json:"cost_rate"`
	Roles                        []string `json:"roles"`
	AccessRoles                  []string `json:"access_roles"`
	AvatarURL                    string   `json:"avatar_url"`
	CreatedAt                    string   `json:"created_at"`
	UpdatedAt                    string   `json:"updated_at"`
}

// UserRef is the abbreviated user embedded in other records.
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserList is one page of users with its pagination envelope.
type UserList struct {
	Users []User `json:"users"`
	Pagination
}

// UserListParams filter the user listing.
type UserListParams struct {
	IsActive     *bool
	UpdatedSince string
	ListParams
}

// Validate checks the filter fields.
func (p UserListParams) Validate() error {
	var probs problems
	probs.datetime("updated_since", p.UpdatedSince)
	return probs.err()
}

func (p UserListParams) query() url.Values {
	q := p.ListParams.query()
	addBool(q, "is_active", p.IsActive)
	addString(q, "updated_since", p.UpdatedSince)
	return q
}

// UserCreate are the fields accepted when creating a user.
type UserCreate struct {
	FirstName                    string   `json:"first_name"`
	LastName                     string   `json:"last_name"`
	Email                        string   `json:"email"`
	Timezone                     string   `json:"timezone,omitempty"`
	HasAccessToAllFutureProjects *bool    `json:"has_access_to_all_future_projects,omitempty"`
	IsContractor                 *bool    `json:"is_contractor,omitempty"`
	IsActive                     *bool    `json:"is_active,omitempty"`
	WeeklyCapacity               *int     `json:"weekly_capacity,omitempty"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate,omitempty"`
	CostRate                     *float64 `json:"cost_rate,omitempty"`
	Roles                        []string `json:"roles,omitempty"`
}

// Validate checks the input before any request is sent.
func (in UserCreate) Validate() error {
	var p problems
	p.requireString("first_name", in.FirstName)
	p.requireString("last_name", in.LastName)
	p.requireString("email", in.Email)
	p.money("default_hourly_rate", in.DefaultHourlyRate)
	p.money("cost_rate", in.CostRate)
	return p.err()
}

// UserUpdate are the fields accepted when updating a user.
type UserUpdate struct {
	FirstName                    *string  `json:"first_name,omitempty"`
	LastName                     *string  `json:"last_name,omitempty"`
	Email                        *string  `json:"email,omitempty"`
	Timezone                     *string  `json:"timezone,omitempty"`
	HasAccessToAllFutureProjects *bool    `json:"has_access_to_all_future_projects,omitempty"`
	IsContractor                 *bool    `json:"is_contractor,omitempty"`
	IsActive                     *bool    `json:"is_active,omitempty"`
	WeeklyCapacity               *int     `json:"weekly_capacity,omitempty"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate,omitempty"`
	CostRate                     *float64 `json:"cost_rate,omitempty"`
	Roles                        []string `json:"roles,omitempty"`
}

// Validate checks only the fields that are present.
func (in UserUpdate) Validate() error {
	var p problems
	if in.FirstName != nil {
		p.requireString("first_name", *in.FirstName)
	}
	if in.LastName != nil {
		p.requireString("last_name", *in.LastName)
	}
	if in.Email != nil {
		p.requireString("email", *in.Email)
	}
	p.money("default_hourly_rate", in.DefaultHourlyRate)
	p.money("cost_rate", in.CostRate)
	return p.err()
}

// ListUsers returns one page of users.
func (a *API) ListUsers(ctx context.Context, params UserListParams) (*UserList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out UserList
	if err := a.get(ctx, "/users", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a single user by ID.
func (a *API) GetUser(ctx context.Context, id int64) (*User, error) {
	if err := checkID("user_id", id); err != nil {
		return nil, err
	}
	var out User
	if err := a.get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCurrentUser fetches the user the access token belongs to. Useful
// as a credential smoke test.
func (a *API) GetCurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := a.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser invites a user and returns the stored record.
func (a *API) CreateUser(ctx context.Context, in UserCreate) (*User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out User
	if err := a.post(ctx, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies the set fields to an existing user.
func (a *API) UpdateUser(ctx context.Context, id int64, in UserUpdate) (*User, error) {
	if err := checkID("user_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out User
	if err := a.patch(ctx, fmt.Sprintf("/users/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user. Deletion fails upstream while the user has
// time entries or expenses; archiving is the usual alternative.
func (a *API) DeleteUser(ctx context.Context, id int64) error {
	if err := checkID("user_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/users/%d", id))
}
