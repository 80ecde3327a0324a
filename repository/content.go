package repository

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepo covers the CMS tables: hero slides, FAQs, site pages and
// contact submissions.
type ContentRepo struct {
	DB *gorm.DB
}

func (r *ContentRepo) HeroSlides(ctx context.Context) ([]models.HeroSlide, error) {
	var out []models.HeroSlide
	err := r.DB.WithContext(ctx).Order("sort_order ASC").Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) GetHeroSlide(ctx context.Context, id string) (*models.HeroSlide, error) {
	var s models.HeroSlide
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ContentRepo) SaveHeroSlide(ctx context.Context, s *models.HeroSlide) error {
	return translate(r.DB.WithContext(ctx).Save(s).Error)
}

func (r *ContentRepo) DeleteHeroSlide(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.HeroSlide{}))
}

func (r *ContentRepo) CountHeroSlides(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.HeroSlide{}).Count(&n).Error
	return n, err
}

func (r *ContentRepo) FAQs(ctx context.Context) ([]models.FAQ, error) {
	var out []models.FAQ
	err := r.DB.WithContext(ctx).Order("sort_order ASC").Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) GetFAQ(ctx context.Context, id string) (*models.FAQ, error) {
	var f models.FAQ
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *ContentRepo) SaveFAQ(ctx context.Context, f *models.FAQ) error {
	return translate(r.DB.WithContext(ctx).Save(f).Error)
}

func (r *ContentRepo) DeleteFAQ(ctx context.Context, id string) error {
	return affected(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.FAQ{}))
}

func (r *ContentRepo) SitePages(ctx context.Context) ([]models.SitePage, error) {
	var out []models.SitePage
	err := r.DB.WithContext(ctx).Order("slug ASC").Find(&out).Error
	return out, err
}

func (r *ContentRepo) SitePage(ctx context.Context, slug string) (*models.SitePage, error) {
	var p models.SitePage
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// UpsertSitePage inserts the page or overwrites the row with the same slug.
func (r *ContentRepo) UpsertSitePage(ctx context.Context, p *models.SitePage) error {
	return translate(r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "contact_email", "contact_phone", "whatsapp", "updated_at"}),
	}).Create(p).Error)
}

func (r *ContentRepo) CreateContactSubmission(ctx context.Context, s *models.ContactSubmission) error {
	return translate(r.DB.WithContext(ctx).Create(s).Error)
}

func (r *ContentRepo) ContactSubmissions(ctx context.Context, page Page) (int64, []models.ContactSubmission, error) {
	q := r.DB.WithContext(ctx).Model(&models.ContactSubmission{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var out []models.ContactSubmission
	if err := page.apply(q.Order("created_at DESC")).Find(&out).Error; err != nil {
		return 0, nil, err
	}
	return total, out, nil
}
