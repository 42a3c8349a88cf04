package tms

import (
	"context"
	"net/http"
)

// SenderAccounts manages shipper accounts and their saved addresses.
type SenderAccounts struct {
	c *Client
}

func senderAccountPath(id string) string {
	return "/sender-accounts/" + pathSegment(id)
}

func senderAddressPath(id, addressID string) string {
	return senderAccountPath(id) + "/addresses/" + pathSegment(addressID)
}

// List returns sender accounts with offset pagination.
func (s *SenderAccounts) List(ctx context.Context, params *ListSenderAccountsParams) (*SenderAccountList, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return call[*SenderAccountList](ctx, s.c, http.MethodGet, "/sender-accounts", RequestOptions{Query: queryOf(params)})
}

// Get returns a single sender account.
func (s *SenderAccounts) Get(ctx context.Context, id string) (*SenderAccount, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return call[*SenderAccount](ctx, s.c, http.MethodGet, senderAccountPath(id), RequestOptions{})
}

// Create registers a sender account.
func (s *SenderAccounts) Create(ctx context.Context, req CreateSenderAccountRequest) (*SenderAccount, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*SenderAccount](ctx, s.c, http.MethodPost, "/sender-accounts", RequestOptions{Body: req})
}

// Update replaces the mutable fields of a sender account.
func (s *SenderAccounts) Update(ctx context.Context, id string, req UpdateSenderAccountRequest) (*SenderAccount, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*SenderAccount](ctx, s.c, http.MethodPut, senderAccountPath(id), RequestOptions{Body: req})
}

// Delete removes a sender account.
func (s *SenderAccounts) Delete(ctx context.Context, id string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, senderAccountPath(id), RequestOptions{})
	return err
}

// ListAddresses returns the saved addresses of a sender account.
func (s *SenderAccounts) ListAddresses(ctx context.Context, id string, params *ListSenderAccountAddressesParams) ([]SenderAccountAddress, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return callData[[]SenderAccountAddress](ctx, s.c, http.MethodGet, senderAccountPath(id)+"/addresses", RequestOptions{Query: queryOf(params)})
}

// Address returns one saved address.
func (s *SenderAccounts) Address(ctx context.Context, id, addressID string) (*SenderAccountAddress, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := requireID("addressID", addressID); err != nil {
		return nil, err
	}
	return call[*SenderAccountAddress](ctx, s.c, http.MethodGet, senderAddressPath(id, addressID), RequestOptions{})
}

// CreateAddress saves a new address on a sender account.
func (s *SenderAccounts) CreateAddress(ctx context.Context, id string, req CreateSenderAccountAddressRequest) (*SenderAccountAddress, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*SenderAccountAddress](ctx, s.c, http.MethodPost, senderAccountPath(id)+"/addresses", RequestOptions{Body: req})
}

// UpdateAddress changes a saved address.
func (s *SenderAccounts) UpdateAddress(ctx context.Context, id, addressID string, req UpdateSenderAccountAddressRequest) (*SenderAccountAddress, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	if err := requireID("addressID", addressID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*SenderAccountAddress](ctx, s.c, http.MethodPut, senderAddressPath(id, addressID), RequestOptions{Body: req})
}

// DeleteAddress removes a saved address.
func (s *SenderAccounts) DeleteAddress(ctx context.Context, id, addressID string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := requireID("addressID", addressID); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, senderAddressPath(id, addressID), RequestOptions{})
	return err
}
