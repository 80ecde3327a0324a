package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	DB *gorm.DB
}

func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepo) Get(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

func (r *CategoryRepo) Save(ctx context.Context, c *models.Category) error {
	return translate(r.DB.WithContext(ctx).Save(c).Error)
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}))
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID string
	Query      string
	Page
}

type ProductRepo struct {
	DB *gorm.DB
}

func (r *ProductRepo) List(ctx context.Context, f ProductFilter) (int64, []models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := f.Page.apply(q.Order("created_at DESC")).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Preload("Variants").Preload("Category").
		Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// GetMany returns products keyed by id, preserving nothing about order.
func (r *ProductRepo) GetMany(ctx context.Context, ids []string) (map[string]models.Product, error) {
	out := make(map[string]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Product
	if err := r.DB.WithContext(ctx).Preload("Variants").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

// Save updates the product row. Variants are managed separately.
func (r *ProductRepo) Save(ctx context.Context, p *models.Product) error {
	return translate(r.DB.WithContext(ctx).Omit("Variants", "Category").Save(p).Error)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.DB.WithContext(ctx).Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
		return err
	}
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}))
}

func (r *ProductRepo) CreateVariant(ctx context.Context, v *models.ProductVariant) error {
	return translate(r.DB.WithContext(ctx).Create(v).Error)
}

func (r *ProductRepo) DeleteVariant(ctx context.Context, productID, variantID string) error {
	return affected(r.DB.WithContext(ctx).
		Where("id = ? AND product_id = ?", variantID, productID).
		Delete(&models.ProductVariant{}))
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}

// ProductStamp is the minimal projection the sitemap needs.
type ProductStamp struct {
	ID        string
	UpdatedAt time.Time
}

func (r *ProductRepo) Stamps(ctx context.Context) ([]ProductStamp, error) {
	var out []ProductStamp
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Select("id", "updated_at").Order("updated_at DESC").Scan(&out).Error
	return out, err
}
