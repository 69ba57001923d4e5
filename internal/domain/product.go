package domain

// Product is one catalog record. product_id is the partition key; no two
// products share one.
type Product struct {
	ProductID   string  `dynamodbav:"product_id"   json:"product_id"`
	ProductName string  `dynamodbav:"product_name" json:"product_name"`
	Category    string  `dynamodbav:"category"     json:"category"`
	BrandName   string  `dynamodbav:"brand_name"   json:"brand_name"`
	Price       float64 `dynamodbav:"price"        json:"price"`
	Quantity    float64 `dynamodbav:"quantity"     json:"quantity"`
	ImagePath   string  `dynamodbav:"image_path"   json:"image_path,omitempty"`
}

type CreateProductRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	BrandName   string  `json:"brand_name"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	ImagePath   string  `json:"image_path"`
}

func (r CreateProductRequest) Product() *Product {
	return &Product{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Category:    r.Category,
		BrandName:   r.BrandName,
		Price:       r.Price,
		Quantity:    r.Quantity,
		ImagePath:   r.ImagePath,
	}
}
