package services

import (
	"context"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	Orders         int64            `json:"orders"`
	Requests       int64            `json:"requests"`
	Products       int64            `json:"products"`
	HeroSlides     int64            `json:"hero_slides"`
	Contacts       int64            `json:"contact_submissions"`
	Revenue        decimal.Decimal  `json:"revenue"`
	LatestOrders   []models.Order   `json:"latest_orders"`
	LatestRequests []models.Request `json:"latest_requests"`
}

type DashboardService struct {
	repos *repository.Repositories
}

func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

// Stats is the back-office overview. Revenue counts paid orders only.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var st DashboardStats
	var err error
	if st.Orders, err = s.repos.Orders.Count(ctx); err != nil {
		return nil, err
	}
	if st.Requests, err = s.repos.Requests.Count(ctx); err != nil {
		return nil, err
	}
	if st.Products, err = s.repos.Products.Count(ctx); err != nil {
		return nil, err
	}
	if st.HeroSlides, err = s.repos.Content.CountHeroSlides(ctx); err != nil {
		return nil, err
	}
	if st.Contacts, _, err = s.repos.Content.ContactSubmissions(ctx, repository.Page{Limit: 1}); err != nil {
		return nil, err
	}
	if st.Revenue, err = s.repos.Orders.Revenue(ctx, models.OrderStatusPaid); err != nil {
		return nil, err
	}
	if st.LatestOrders, err = s.repos.Orders.Latest(ctx, 5); err != nil {
		return nil, err
	}
	if st.LatestRequests, err = s.repos.Requests.Latest(ctx, 5); err != nil {
		return nil, err
	}
	return &st, nil
}
