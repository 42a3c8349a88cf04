package tms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alphacargo/tms-go/signature"
)

// MaxBatchLabelWaybills bounds a single BatchLabel call.
const MaxBatchLabelWaybills = 100

// Waybills manages shipping orders, their packages and tracking.
type Waybills struct {
	c *Client
}

func waybillPath(waybillNo string) string {
	return "/waybills/" + pathSegment(waybillNo)
}

// Create registers a new waybill.
func (s *Waybills) Create(ctx context.Context, req CreateWaybillRequest) (*CreateWaybillResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*CreateWaybillResponse](ctx, s.c, http.MethodPost, "/waybills", RequestOptions{Body: req})
}

// Cancel cancels a waybill by its number or external number.
func (s *Waybills) Cancel(ctx context.Context, waybillNo string) (*MessageResponse, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	return call[*MessageResponse](ctx, s.c, http.MethodDelete, waybillPath(waybillNo), RequestOptions{})
}

// Events returns the tracking events of a waybill.
func (s *Waybills) Events(ctx context.Context, waybillNo string) (*WaybillEvents, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	return call[*WaybillEvents](ctx, s.c, http.MethodGet, waybillPath(waybillNo)+"/events", RequestOptions{Sign: SignQuery})
}

// Routes returns the tracking events in the legacy format with numeric states.
func (s *Waybills) Routes(ctx context.Context, waybillNo string) (*WaybillEvents, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	return call[*WaybillEvents](ctx, s.c, http.MethodGet, waybillPath(waybillNo)+"/routes", RequestOptions{Sign: SignQuery})
}

// Label downloads the shipping label PDF of a waybill, or of a single
// package when params names one.
func (s *Waybills) Label(ctx context.Context, waybillNo string, params *LabelParams) ([]byte, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	res, err := s.c.DoRaw(ctx, http.MethodGet, waybillPath(waybillNo)+"/label", RawRequest{
		Query:          queryOf(params),
		FailureMessage: "Failed to get label",
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// BatchLabel downloads one merged PDF holding the labels of all waybills.
func (s *Waybills) BatchLabel(ctx context.Context, waybillNos []string) ([]byte, error) {
	if err := validateRequest(batchLabelRequest{WaybillNos: waybillNos}); err != nil {
		return nil, err
	}
	if len(waybillNos) > MaxBatchLabelWaybills {
		return nil, fmt.Errorf("%w: waybill_nos cannot exceed %d entries", ErrInvalidRequest, MaxBatchLabelWaybills)
	}
	nos := make(signature.Array, len(waybillNos))
	for i, no := range waybillNos {
		nos[i] = signature.String(no)
	}
	res, err := s.c.DoRaw(ctx, http.MethodPost, "/waybills/batch-label", RawRequest{
		Body:           jsonBody(signature.Object{"waybill_nos": nos}),
		FailureMessage: "Failed to get batch labels",
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

type batchLabelRequest struct {
	WaybillNos []string `json:"waybill_nos" validate:"min=1,dive,required"`
}

// AddPackage adds a package to an existing waybill.
func (s *Waybills) AddPackage(ctx context.Context, waybillNo string, req AddPackageRequest) (*AddPackageResponse, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*AddPackageResponse](ctx, s.c, http.MethodPost, waybillPath(waybillNo)+"/packages", RequestOptions{Body: req})
}

// ListAdditionalServices lists the additional services booked on a waybill.
func (s *Waybills) ListAdditionalServices(ctx context.Context, waybillNo string) ([]AdditionalService, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	return callData[[]AdditionalService](ctx, s.c, http.MethodGet, waybillPath(waybillNo)+"/additional-services", RequestOptions{})
}

// AddAdditionalServices books the given services on a waybill.
func (s *Waybills) AddAdditionalServices(ctx context.Context, waybillNo string, serviceIDs []string) ([]AdditionalService, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	req := additionalServicesRequest{ServiceIDs: serviceIDs}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return callData[[]AdditionalService](ctx, s.c, http.MethodPost, waybillPath(waybillNo)+"/additional-services", RequestOptions{Body: req})
}

type additionalServicesRequest struct {
	ServiceIDs []string `json:"service_ids" validate:"min=1,dive,required"`
}

// UpdateAdditionalService changes the status of a booked service.
func (s *Waybills) UpdateAdditionalService(ctx context.Context, waybillNo, serviceID string, req UpdateAdditionalServiceRequest) (*AdditionalService, error) {
	if err := requireID("waybillNo", waybillNo); err != nil {
		return nil, err
	}
	if err := requireID("serviceID", serviceID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	path := waybillPath(waybillNo) + "/additional-services/" + pathSegment(serviceID)
	return callData[*AdditionalService](ctx, s.c, http.MethodPatch, path, RequestOptions{Body: req})
}

// Consolidate merges several waybills under a new master waybill.
func (s *Waybills) Consolidate(ctx context.Context, req ConsolidateWaybillsRequest) (*ConsolidateWaybillsResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*ConsolidateWaybillsResponse](ctx, s.c, http.MethodPost, "/waybills/consolidated-waybills", RequestOptions{Body: req})
}
