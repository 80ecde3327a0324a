package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
	"github.com/shopspring/decimal"
)

type VariantInput struct {
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	SKU             string          `json:"sku"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	Stock           int             `json:"stock"`
}

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	Images      []string        `json:"images"`
	CategoryID  *string         `json:"category_id"`
	Variants    []VariantInput  `json:"variants"`
}

func (in *ProductInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	for _, v := range in.Variants {
		if v.Stock < 0 {
			return fmt.Errorf("%w: variant stock cannot be negative", ErrValidation)
		}
	}
	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) == "" {
		in.CategoryID = nil
	}
	images := in.Images[:0]
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	in.Images = images
	return nil
}

func (v VariantInput) model(productID string) models.ProductVariant {
	return models.ProductVariant{
		ProductID:       productID,
		Size:            strings.TrimSpace(v.Size),
		Color:           strings.TrimSpace(v.Color),
		SKU:             strings.TrimSpace(v.SKU),
		PriceAdjustment: v.PriceAdjustment,
		Stock:           v.Stock,
	}
}

type CatalogService struct {
	repos    *repository.Repositories
	index    ProductIndex
	currency string
}

// NewCatalogService wires the catalog. index may be nil, in which case
// search runs against the database.
func NewCatalogService(repos *repository.Repositories, index ProductIndex, currency string) *CatalogService {
	return &CatalogService{repos: repos, index: index, currency: currency}
}

func (s *CatalogService) List(ctx context.Context, f repository.ProductFilter) (int64, []models.Product, error) {
	return s.repos.Products.List(ctx, f)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repos.Products.Get(ctx, id)
}

// Search uses the product index when one is configured and falls back to a
// database match when the index is missing or failing.
func (s *CatalogService) Search(ctx context.Context, query string, page repository.Page) (int64, []models.Product, error) {
	query = strings.TrimSpace(query)
	if s.index != nil && query != "" {
		total, ids, err := s.index.Search(ctx, query, page.Limit, page.Offset)
		if err == nil {
			found, err := s.repos.Products.GetMany(ctx, ids)
			if err != nil {
				return 0, nil, err
			}
			out := make([]models.Product, 0, len(ids))
			for _, id := range ids {
				if p, ok := found[id]; ok {
					out = append(out, p)
				}
			}
			return total, out, nil
		}
		utils.LogError("Product index search failed, falling back to database: %v", err)
	}
	return s.repos.Products.List(ctx, repository.ProductFilter{Query: query, Page: page})
}

func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Currency:    firstNonEmpty(in.Currency, s.currency),
		Stock:       in.Stock,
		SKU:         in.SKU,
		Images:      in.Images,
		CategoryID:  in.CategoryID,
	}
	for _, v := range in.Variants {
		p.Variants = append(p.Variants, v.model(""))
	}
	if err := s.repos.Products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	utils.LogInfo("Product %s (%s) created", p.ID, p.Name)
	s.reindex(ctx, p)
	return p, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.repos.Products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price.Round(2)
	p.Currency = firstNonEmpty(in.Currency, p.Currency, s.currency)
	p.Stock = in.Stock
	p.SKU = in.SKU
	p.Images = in.Images
	p.CategoryID = in.CategoryID
	p.Category = nil
	if err := s.repos.Products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.reindex(ctx, p)
	return s.repos.Products.Get(ctx, id)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		return tx.Products.Delete(ctx, id)
	}); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.Delete(ctx, id); err != nil {
			utils.LogError("Failed to remove product %s from index: %v", id, err)
		}
	}
	return nil
}

func (s *CatalogService) AddVariant(ctx context.Context, productID string, in VariantInput) (*models.ProductVariant, error) {
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: variant stock cannot be negative", ErrValidation)
	}
	if _, err := s.repos.Products.Get(ctx, productID); err != nil {
		return nil, err
	}
	v := in.model(productID)
	if err := s.repos.Products.CreateVariant(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *CatalogService) DeleteVariant(ctx context.Context, productID, variantID string) error {
	return s.repos.Products.DeleteVariant(ctx, productID, variantID)
}

func (s *CatalogService) reindex(ctx context.Context, p *models.Product) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, p); err != nil {
		utils.LogError("Failed to index product %s: %v", p.ID, err)
	}
}

// ReindexAll pushes every product to the index.
func (s *CatalogService) ReindexAll(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, nil
	}
	_, products, err := s.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, err
	}
	for i := range products {
		if err := s.index.Index(ctx, &products[i]); err != nil {
			return i, err
		}
	}
	return len(products), nil
}

type CategoryInput struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parent_id"`
	ImageURL string  `json:"image_url"`
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.repos.Categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	c := &models.Category{Name: in.Name, Slug: in.Slug, ParentID: in.ParentID, ImageURL: in.ImageURL}
	if err := s.repos.Categories.Create(ctx, c); err != nil {
		if errorsIsDuplicate(err) {
			return nil, fmt.Errorf("%w: category slug %s already exists", ErrConflict, c.Slug)
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.ParentID != nil && *in.ParentID == id {
		return nil, fmt.Errorf("%w: a category cannot be its own parent", ErrValidation)
	}
	c, err := s.repos.Categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Slug = in.Slug
	c.ParentID = in.ParentID
	c.ImageURL = in.ImageURL
	if err := s.repos.Categories.Save(ctx, c); err != nil {
		if errorsIsDuplicate(err) {
			return nil, fmt.Errorf("%w: category slug %s already exists", ErrConflict, c.Slug)
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.repos.Categories.Delete(ctx, id)
}

// CartLine prices a product, and optionally one of its variants, as a cart
// line.
func (s *CatalogService) CartLine(ctx context.Context, productID, variantID string, quantity int) (models.CartItem, error) {
	p, err := s.repos.Products.Get(ctx, productID)
	if err != nil {
		return models.CartItem{}, err
	}
	item := models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Image:     p.ImageURL(),
	}
	if variantID != "" {
		v, ok := findVariant(*p, variantID)
		if !ok {
			return models.CartItem{}, fmt.Errorf("variant %s: %w", variantID, ErrNotFound)
		}
		item.VariantID = v.ID
		item.Price = v.UnitPrice(*p)
		item.Name = variantName(p.Name, v)
	}
	return item, nil
}

func variantName(name string, v models.ProductVariant) string {
	var parts []string
	for _, s := range []string{v.Size, v.Color} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + " (" + strings.Join(parts, ", ") + ")"
}
