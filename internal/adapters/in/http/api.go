package http

import "time"

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the checkout request body.
type CreateOrderRequest struct {
	ListingID      string `json:"listing_id"`
	DeliveryMethod string `json:"delivery_method"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ShipOrderRequest carries the carrier tracking number.
type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// CancelOrderRequest carries the cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderSummary is one row of a user's order list.
type OrderSummary struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	ListingTitle    string    `json:"listing_title"`
	ListingImageRef string    `json:"listing_image_ref"`
	BuyerName       string    `json:"buyer_name"`
	SellerName      string    `json:"seller_name"`
	TotalAmount     int       `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// PendingConfirmationOrder is one row of the operator's confirmation queue.
type PendingConfirmationOrder struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	BuyerName   string    `json:"buyer_name"`
	BuyerPhone  string    `json:"buyer_phone"`
	TotalAmount int       `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderDetail is the full order view, including the monetary breakdown and
// the per-stage timestamps.
type OrderDetail struct {
	ID              string `json:"id"`
	OrderNumber     string `json:"order_number"`
	BuyerID         string `json:"buyer_id"`
	BuyerName       string `json:"buyer_name"`
	BuyerPhone      string `json:"buyer_phone"`
	SellerID        string `json:"seller_id"`
	SellerName      string `json:"seller_name"`
	ListingID       string `json:"listing_id"`
	ListingTitle    string `json:"listing_title"`
	ListingImageRef string `json:"listing_image_ref"`

	ArticlePrice int `json:"article_price"`
	DeliveryFee  int `json:"delivery_fee"`
	Commission   int `json:"commission"`
	TotalAmount  int `json:"total_amount"`

	DeliveryMethod string `json:"delivery_method"`
	Status         string `json:"status"`

	TrackingNumber     string `json:"tracking_number,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	DisputeReason      string `json:"dispute_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// OpenDisputeRequest is the body for raising a case against an order.
type OpenDisputeRequest struct {
	OrderID     string   `json:"order_id"`
	Reason      string   `json:"reason"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence,omitempty"`
}

// DisputeMessageRequest carries one conversation entry.
type DisputeMessageRequest struct {
	Text string `json:"text"`
}

// ResolveDisputeRequest carries the operator's decision.
type ResolveDisputeRequest struct {
	ResolutionType string `json:"resolution_type"`
	Amount         int    `json:"amount,omitempty"`
	Note           string `json:"note"`
}

// DisputeSummary is one row of the case queue or archive.
type DisputeSummary struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id,omitempty"`
	OrderNumber      string    `json:"order_number"`
	ArticleTitle     string    `json:"article_title"`
	Amount           int       `json:"amount"`
	BuyerName        string    `json:"buyer_name"`
	SellerName       string    `json:"seller_name"`
	Reason           string    `json:"reason,omitempty"`
	Status           string    `json:"status"`
	ResolutionType   string    `json:"resolution_type,omitempty"`
	ResolutionAmount int       `json:"resolution_amount,omitempty"`
	OpenedAt         time.Time `json:"opened_at,omitempty"`
	DecidedAt        time.Time `json:"decided_at,omitempty"`
}

// DisputeMessage is one thread entry in a case detail.
type DisputeMessage struct {
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// DisputeResolution is the recorded decision in a case detail.
type DisputeResolution struct {
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Note      string    `json:"note"`
	DecidedBy string    `json:"decided_by"`
	DecidedAt time.Time `json:"decided_at"`
}

// DisputeDetail is the full case view, including the conversation thread.
type DisputeDetail struct {
	ID           string             `json:"id"`
	OrderID      string             `json:"order_id"`
	OrderNumber  string             `json:"order_number"`
	ArticleTitle string             `json:"article_title"`
	Amount       int                `json:"amount"`
	BuyerID      string             `json:"buyer_id"`
	BuyerName    string             `json:"buyer_name"`
	SellerID     string             `json:"seller_id"`
	SellerName   string             `json:"seller_name"`
	OpenedBy     string             `json:"opened_by"`
	Reason       string             `json:"reason"`
	Description  string             `json:"description"`
	Evidence     []string           `json:"evidence,omitempty"`
	Status       string             `json:"status"`
	Messages     []DisputeMessage   `json:"messages"`
	Resolution   *DisputeResolution `json:"resolution,omitempty"`
	OpenedAt     time.Time          `json:"opened_at"`
}
