package tms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DeliveryEvents records courier scan events and their proof-of-delivery photos.
type DeliveryEvents struct {
	c *Client
}

func deliveryEventPath(id string) string {
	return "/delivery-events/" + pathSegment(id)
}

// Create records a delivery event.
func (s *DeliveryEvents) Create(ctx context.Context, req CreateDeliveryEventRequest) (*DeliveryEvent, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return call[*DeliveryEvent](ctx, s.c, http.MethodPost, "/delivery-events", RequestOptions{Body: req})
}

// UploadPODs uploads proof-of-delivery photos for an event as a multipart
// form. The decoded response body is returned as is.
func (s *DeliveryEvents) UploadPODs(ctx context.Context, eventID string, photos []PODPhoto) (map[string]any, error) {
	if err := requireID("eventID", eventID); err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: photos must have at least 1 entries", ErrInvalidRequest)
	}
	body, contentType, err := multipartPhotos(photos)
	if err != nil {
		return nil, err
	}
	path := deliveryEventPath(eventID) + "/pods"
	res, err := s.c.DoRaw(ctx, http.MethodPost, path, RawRequest{
		Body:           body,
		ContentType:    contentType,
		FailureMessage: "Failed to upload PODs",
	})
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return nil, &RequestError{
			Method: http.MethodPost,
			URL:    s.c.baseURL + path,
			Err:    fmt.Errorf("%w: %w", ErrInvalidResponse, err),
		}
	}
	return out, nil
}

// DeletePOD removes one proof-of-delivery photo, identified by its URL.
func (s *DeliveryEvents) DeletePOD(ctx context.Context, eventID, imageURL string) error {
	if err := requireID("eventID", eventID); err != nil {
		return err
	}
	if err := requireID("imageURL", imageURL); err != nil {
		return err
	}
	_, err := s.c.Do(ctx, http.MethodDelete, deliveryEventPath(eventID)+"/pods/"+pathSegment(imageURL), RequestOptions{})
	return err
}
