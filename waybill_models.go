package tms

// Product defines model for a product inside a parcel.
type Product struct {
	SKU      string   `json:"sku" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Number   *int     `json:"number,omitempty" validate:"omitempty,gte=0"`
	Weight   *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Width    *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Length   *float64 `json:"length,omitempty" validate:"omitempty,gte=0"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
}

// Parcel defines model for CreateWaybillRequest.parcelList.Item.
type Parcel struct {
	OutParcelNo string    `json:"outParcelNo" validate:"required"`
	ItemDesc    string    `json:"itemDesc" validate:"required"`
	ItemValue   float64   `json:"itemValue" validate:"gte=0"`
	Weight      *float64  `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Width       *float64  `json:"width,omitempty" validate:"omitempty,gte=0"`
	Length      *float64  `json:"length,omitempty" validate:"omitempty,gte=0"`
	Height      *float64  `json:"height,omitempty" validate:"omitempty,gte=0"`
	ProductList []Product `json:"productList" validate:"required,dive"`
	Photos      []string  `json:"photos,omitempty"`
}

// SenderAccountRef selects the sender account of a waybill by code or id.
type SenderAccountRef struct {
	Code string `json:"code,omitempty"`
	ID   string `json:"id,omitempty"`
}

// CreateWaybillRequest defines model for CreateWaybillRequest.
type CreateWaybillRequest struct {
	OutTradeNo           string            `json:"outTradeNo" validate:"required"`
	Owner                string            `json:"owner" validate:"required"`
	SenderName           string            `json:"senderName" validate:"required"`
	SenderPhone          string            `json:"senderPhone" validate:"required"`
	SenderCityName       string            `json:"senderCityName" validate:"required"`
	SenderDistrictName   string            `json:"senderDistrictName" validate:"required"`
	SenderPostCode       string            `json:"senderPostCode" validate:"required"`
	SenderAddress        string            `json:"senderAddress" validate:"required"`
	ReceiverName         string            `json:"receiverName" validate:"required"`
	ReceiverPhone        string            `json:"receiverPhone" validate:"required"`
	ReceiverPhone2       string            `json:"receiverPhone2,omitempty"`
	ReceiverProvinceName string            `json:"receiverProvinceName" validate:"required"`
	ReceiverCityName     string            `json:"receiverCityName" validate:"required"`
	ReceiverDistrictName string            `json:"receiverDistrictName" validate:"required"`
	ReceiverPostCode     string            `json:"receiverPostCode" validate:"required"`
	ReceiverAddress      string            `json:"receiverAddress" validate:"required"`
	ParcelList           []Parcel          `json:"parcelList" validate:"min=1,dive"`
	Remark               string            `json:"remark,omitempty"`
	ServiceID            string            `json:"service_id,omitempty"`
	RouteID              string            `json:"route_id,omitempty"`
	AdditionalServiceIDs []string          `json:"additional_service_ids,omitempty"`
	SenderAccount        *SenderAccountRef `json:"sender_account,omitempty"`
}

// WaybillPackage defines model for CreateWaybillResponse.packages.Item.
type WaybillPackage struct {
	PackageNo         string `json:"package_no"`
	ExternalPackageNo string `json:"external_package_no"`
}

// CreateWaybillResponse defines model for CreateWaybillResponse.
type CreateWaybillResponse struct {
	WaybillNo         string           `json:"waybill_no"`
	ExternalWaybillNo string           `json:"external_waybill_no"`
	Status            string           `json:"status"`
	Packages          []WaybillPackage `json:"packages"`
}

// TrackingRoute is one tracking event. CreatedAt is a Unix timestamp.
type TrackingRoute struct {
	State     string `json:"state"`
	StateText string `json:"stateText"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}

// WaybillEvents defines model for the tracking lookups.
type WaybillEvents struct {
	TrackingNo    string          `json:"trackingNo"`
	State         string          `json:"state"`
	StateText     string          `json:"stateText"`
	LicensePlate  string          `json:"licensePlate,omitempty"`
	CourierPhone  string          `json:"courierPhone,omitempty"`
	PODImages     []string        `json:"podImages"`
	ReturnedItems []string        `json:"returnedItems"`
	Routes        []TrackingRoute `json:"routes"`
}

// LabelParams selects a single package label.
type LabelParams struct {
	PackageID string `json:"packageId,omitempty"`
}

// AddPackageRequest defines model for AddPackageRequest.
type AddPackageRequest struct {
	ExternalPackageNo string    `json:"external_package_no" validate:"required"`
	Weight            *float64  `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Width             *float64  `json:"width,omitempty" validate:"omitempty,gte=0"`
	Length            *float64  `json:"length,omitempty" validate:"omitempty,gte=0"`
	Height            *float64  `json:"height,omitempty" validate:"omitempty,gte=0"`
	Notes             string    `json:"notes,omitempty"`
	Products          []Product `json:"products,omitempty" validate:"omitempty,dive"`
}

// AddPackageResponse defines model for AddPackageResponse.
type AddPackageResponse struct {
	PackageNo         string `json:"package_no"`
	ExternalPackageNo string `json:"external_package_no"`
	WaybillID         string `json:"waybill_id"`
}

// AdditionalServiceStatus defines model for AdditionalService.Status.
type AdditionalServiceStatus string

// Defines values for AdditionalServiceStatus.
const (
	AdditionalServicePending    AdditionalServiceStatus = "pending"
	AdditionalServiceInProgress AdditionalServiceStatus = "in_progress"
	AdditionalServiceCompleted  AdditionalServiceStatus = "completed"
	AdditionalServiceSkipped    AdditionalServiceStatus = "skipped"
)

// ServiceRef is the short form of a service embedded in other models.
type ServiceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdditionalService defines model for an additional service on a waybill.
type AdditionalService struct {
	ID        string                  `json:"id"`
	ServiceID string                  `json:"service_id"`
	WaybillID string                  `json:"waybill_id"`
	Status    AdditionalServiceStatus `json:"status"`
	Result    map[string]any          `json:"result,omitempty"`
	Service   *ServiceRef             `json:"service,omitempty"`
	CreatedAt string                  `json:"created_at"`
}

// UpdateAdditionalServiceRequest defines model for UpdateAdditionalServiceRequest.
type UpdateAdditionalServiceRequest struct {
	Status AdditionalServiceStatus `json:"status" validate:"required,oneof=completed skipped in_progress"`
	Result map[string]any          `json:"result,omitempty"`
}

// RecipientAddress defines model for RecipientInput.address.
type RecipientAddress struct {
	StreetLine     string `json:"street_line" validate:"required"`
	BlockFloorRoom string `json:"block_floor_room,omitempty"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	Town           string `json:"town,omitempty"`
	ZipCode        string `json:"zip_code" validate:"required"`
	Country        string `json:"country,omitempty"`
}

// RecipientInput defines model for ConsolidateWaybillsRequest.recipient.
type RecipientInput struct {
	Name    string           `json:"name" validate:"required"`
	Phone   string           `json:"phone" validate:"required"`
	Email   string           `json:"email,omitempty" validate:"omitempty,email"`
	Address RecipientAddress `json:"address"`
}

// IDRef references an existing entity by id.
type IDRef struct {
	ID string `json:"id" validate:"required"`
}

// ConsolidateWaybillsRequest defines model for ConsolidateWaybillsRequest.
type ConsolidateWaybillsRequest struct {
	WaybillIDs        []string       `json:"waybill_ids" validate:"min=1,dive,required"`
	ExternalWaybillNo string         `json:"external_waybill_no" validate:"required"`
	Sender            IDRef          `json:"sender"`
	Recipient         RecipientInput `json:"recipient"`
	ServiceID         string         `json:"service_id" validate:"required"`
	RouteID           string         `json:"route_id,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	Tags              []string       `json:"tags,omitempty"`
}

// WaybillRef is the short form of a waybill.
type WaybillRef struct {
	ID        string `json:"id"`
	WaybillNo string `json:"waybill_no"`
}

// ConsolidateWaybillsResponse defines model for ConsolidateWaybillsResponse.
type ConsolidateWaybillsResponse struct {
	MasterWaybill WaybillRef   `json:"masterWaybill"`
	SubWaybills   []WaybillRef `json:"subWaybills"`
}

// MessageResponse is returned by endpoints that only acknowledge a request.
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}
