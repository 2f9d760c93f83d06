package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Client is a Harvest client (customer) record.
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	Address   string `json:"address"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ClientRef is the abbreviated client embedded in other records.
type ClientRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
}

// ClientList is one page of clients with its pagination envelope.
type ClientList struct {
	Clients []Client `json:"clients"`
	Pagination
}

// ClientListParams filter the client listing.
type ClientListParams struct {
	IsActive     *bool
	UpdatedSince string
	ListParams
}

// Validate checks the filter fields.
func (p ClientListParams) Validate() error {
	var probs problems
	probs.datetime("updated_since", p.UpdatedSince)
	return probs.err()
}

func (p ClientListParams) query() url.Values {
	q := p.ListParams.query()
	addBool(q, "is_active", p.IsActive)
	addString(q, "updated_since", p.UpdatedSince)
	return q
}

// ClientCreate are the fields accepted when creating a client.
type ClientCreate struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active,omitempty"`
	Address  string `json:"address,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Validate checks the input before any request is sent.
func (in ClientCreate) Validate() error {
	var p problems
	p.requireString("name", in.Name)
	p.currency("currency", in.Currency)
	return p.err()
}

// ClientUpdate are the fields accepted when updating a client. Nil
// fields are left unchanged; the identifier travels only in the path.
type ClientUpdate struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Address  *string `json:"address,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// Validate checks only the fields that are present.
func (in ClientUpdate) Validate() error {
	var p problems
	if in.Name != nil {
		p.requireString("name", *in.Name)
	}
	if in.Currency != nil {
		p.currency("currency", *in.Currency)
	}
	return p.err()
}

// ListClients returns one page of clients.
func (a *API) ListClients(ctx context.Context, params ClientListParams) (*ClientList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out ClientList
	if err := a.get(ctx, "/clients", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClient fetches a single client by ID.
func (a *API) GetClient(ctx context.Context, id int64) (*Client, error) {
	if err := checkID("client_id", id); err != nil {
		return nil, err
	}
	var out Client
	if err := a.get(ctx, fmt.Sprintf("/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient creates a client and returns the stored record.
func (a *API) CreateClient(ctx context.Context, in ClientCreate) (*Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Client
	if err := a.post(ctx, "/clients", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient applies the set fields to an existing client.
func (a *API) UpdateClient(ctx context.Context, id int64, in ClientUpdate) (*Client, error) {
	if err := checkID("client_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Client
	if err := a.patch(ctx, fmt.Sprintf("/clients/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a client. Deletion fails upstream while the
// client still has projects or invoices.
func (a *API) DeleteClient(ctx context.Context, id int64) error {
	if err := checkID("client_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/clients/%d", id))
}
