package domain

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// Order is one placed order. product_name is a denormalized copy taken at
// placement time; product_id references a Product by value only, there is no
// foreign-key enforcement in the store.
type Order struct {
	OrderID       string  `dynamodbav:"order_id"       json:"order_id"`
	ProductID     string  `dynamodbav:"product_id"     json:"product_id"`
	UserID        string  `dynamodbav:"user_id"        json:"user_id"`
	ProductName   string  `dynamodbav:"product_name"   json:"product_name"`
	Datetime      string  `dynamodbav:"datetime"       json:"datetime"`
	ContactNumber string  `dynamodbav:"contact_number" json:"contact_number"`
	Quantity      int     `dynamodbav:"quantity"       json:"quantity"`
	TotalPrice    float64 `dynamodbav:"total_price"    json:"total_price"`
	OrderStatus   string  `dynamodbav:"order_status"   json:"order_status"`
}

// PlaceOrderRequest carries the caller-supplied part of an order. OrderID,
// TotalPrice and Datetime may be left zero; the service fills them in.
type PlaceOrderRequest struct {
	OrderID       string  `json:"order_id"`
	ProductID     string  `json:"product_id"`
	UserID        string  `json:"user_id"`
	ProductName   string  `json:"product_name"`
	ContactNumber string  `json:"contact_number"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}
