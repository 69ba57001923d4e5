package domain

// InventoryEntry is one stock movement. The table key is composite
// (product_id, datetime): every movement writes a new entry, many entries per
// product. The running total lives on Product.Quantity and is maintained by a
// separate flow.
type InventoryEntry struct {
	ProductID string `dynamodbav:"product_id" json:"product_id"`
	Datetime  string `dynamodbav:"datetime"   json:"datetime"`
	Quantity  int    `dynamodbav:"quantity"   json:"quantity"`
	Remarks   string `dynamodbav:"remarks"    json:"remarks,omitempty"`
}

type AddStocksRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Remarks   string `json:"remarks"`
}
