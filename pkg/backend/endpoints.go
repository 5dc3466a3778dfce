package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "root", http.MethodGet, "/api/", nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, "categories", http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListProducts(ctx context.Context, category, brand string) ([]models.Product, error) {
	query := url.Values{}
	if category = strings.TrimSpace(category); category != "" {
		query.Set("category", category)
	}
	if brand = strings.TrimSpace(brand); brand != "" {
		query.Set("brand", brand)
	}

	var products []models.Product
	if err := c.do(ctx, "products", http.MethodGet, "/api/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, "product", http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ListDeliveryZones(ctx context.Context) ([]models.DeliveryZone, error) {
	var zones []models.DeliveryZone
	if err := c.do(ctx, "delivery_zones", http.MethodGet, "/api/delivery-zones", nil, nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *Client) DeliveryDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error) {
	query := url.Values{"city": []string{city}}

	var info models.DeliveryDateInfo
	if err := c.do(ctx, "delivery_date", http.MethodGet, "/api/delivery-date", query, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, "create_order", http.MethodPost, "/api/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, email string) ([]models.Order, error) {
	query := url.Values{}
	if email = strings.TrimSpace(email); email != "" {
		query.Set("email", email)
	}

	var orders []models.Order
	if err := c.do(ctx, "orders", http.MethodGet, "/api/orders", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, "order", http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) SubmitOfferRequest(ctx context.Context, req *models.OfferRequest) error {
	return c.do(ctx, "offer_request", http.MethodPost, "/api/offer-request", nil, req, nil)
}
