package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Identity is what the auth token tells us about the caller.
type Identity struct {
	ID           string
	Email        string
	Name         string
	ReferralCode string
}

type ProfileInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}

type AddressInput struct {
	Label     string `json:"label"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}

type WalletView struct {
	Balance      decimal.Decimal            `json:"balance"`
	Transactions []models.WalletTransaction `json:"transactions"`
	Total        int64                      `json:"total"`
}

type ReferralView struct {
	Code            string            `json:"referral_code"`
	Referrals       []models.Referral `json:"referrals"`
	TotalCommission decimal.Decimal   `json:"total_commission"`
}

// AccountService owns everything a signed-in customer manages about
// themselves.
type AccountService struct {
	repos *repository.Repositories
}

func NewAccountService(repos *repository.Repositories) *AccountService {
	return &AccountService{repos: repos}
}

// EnsureProfile returns the caller's profile, creating it with a fresh
// referral code on first sight.
func (s *AccountService) EnsureProfile(ctx context.Context, id Identity) (*models.Profile, error) {
	if id.ID == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	p, err := s.repos.Profiles.Get(ctx, id.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var created *models.Profile
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		profile := &models.Profile{
			Model:        models.Model{ID: id.ID},
			Name:         strings.TrimSpace(id.Name),
			Email:        strings.TrimSpace(id.Email),
			Role:         models.RoleUser,
			ReferralCode: NewReferralCode(),
		}

		var referrer *models.Profile
		if code := strings.TrimSpace(id.ReferralCode); code != "" {
			r, err := tx.Profiles.GetByReferralCode(ctx, strings.ToUpper(code))
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if r != nil && r.ID != profile.ID {
				referrer = r
				profile.ReferredByID = &r.ID
			}
		}

		if err := tx.Profiles.Create(ctx, profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if referrer != nil {
			if err := tx.Referrals.Create(ctx, &models.Referral{
				ReferrerID: referrer.ID,
				ReferredID: profile.ID,
				Commission: decimal.Zero,
				Status:     models.ReferralPending,
			}); err != nil {
				return fmt.Errorf("record referral: %w", err)
			}
		}
		created = profile
		return nil
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// Another request created it first.
		return s.repos.Profiles.Get(ctx, id.ID)
	}
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Profile %s created for %s", created.ID, created.Email)
	return created, nil
}

// NewReferralCode returns an 8 character upper-case code.
func NewReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *AccountService) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repos.Profiles.Get(ctx, userID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if ok, msg := utils.ValidateName(in.Name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	ok, phone := utils.ValidatePhone(in.Phone)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidation, phone)
	}
	if in.AvatarURL != "" && !utils.IsHTTPURL(in.AvatarURL) {
		return nil, fmt.Errorf("%w: avatar_url must be a valid URL", ErrValidation)
	}
	if err := s.repos.Profiles.Update(ctx, userID, map[string]interface{}{
		"name":       in.Name,
		"phone":      phone,
		"address":    utils.SanitizeString(strings.TrimSpace(in.Address)),
		"avatar_url": in.AvatarURL,
	}); err != nil {
		return nil, err
	}
	return s.repos.Profiles.Get(ctx, userID)
}

func (s *AccountService) Wallet(ctx context.Context, userID string, page repository.Page) (*WalletView, error) {
	p, err := s.repos.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, txs, err := s.repos.Wallet.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &WalletView{Balance: p.WalletBalance, Transactions: txs, Total: total}, nil
}

// CreditWallet adds store credit and writes the matching ledger row.
func (s *AccountService) CreditWallet(ctx context.Context, userID string, amount decimal.Decimal, kind models.WalletTransactionType, description string) (*models.Profile, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}
	switch kind {
	case models.WalletCredit, models.WalletReferral, models.WalletCashback, models.WalletRefund:
	case "":
		kind = models.WalletCredit
	default:
		return nil, fmt.Errorf("%w: %q is not a credit type", ErrValidation, kind)
	}
	amount = amount.Round(2)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		return creditWallet(ctx, tx, userID, amount, kind, "", description)
	})
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Wallet of %s credited %s (%s)", userID, amount.StringFixed(2), kind)
	return s.repos.Profiles.Get(ctx, userID)
}

func creditWallet(ctx context.Context, tx *repository.Repositories, userID string, amount decimal.Decimal, kind models.WalletTransactionType, ref, description string) error {
	if err := tx.Profiles.CreditWallet(ctx, userID, amount); err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	return tx.Wallet.Record(ctx, &models.WalletTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        kind,
		ReferenceID: ref,
		Description: description,
	})
}

func (s *AccountService) Referrals(ctx context.Context, userID string) (*ReferralView, error) {
	p, err := s.repos.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs, err := s.repos.Referrals.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.repos.Referrals.TotalCommission(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ReferralView{Code: p.ReferralCode, Referrals: refs, TotalCommission: total}, nil
}

func (s *AccountService) Addresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.repos.Addresses.ListByUser(ctx, userID)
}

// AddAddress stores an address. The first address, or any marked default,
// becomes the only default.
func (s *AccountService) AddAddress(ctx context.Context, userID string, in AddressInput) (*models.Address, error) {
	in.Address = strings.TrimSpace(in.Address)
	if in.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}
	ok, phone := utils.ValidatePhone(in.Phone)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidation, phone)
	}
	addr := &models.Address{
		UserID:    userID,
		Label:     firstNonEmpty(strings.TrimSpace(in.Label), "Home"),
		Address:   utils.SanitizeString(in.Address),
		City:      strings.TrimSpace(in.City),
		Country:   firstNonEmpty(strings.TrimSpace(in.Country), models.DefaultRecipientCountry),
		Phone:     phone,
		IsDefault: in.IsDefault,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		existing, err := tx.Addresses.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			addr.IsDefault = true
		}
		if addr.IsDefault {
			if err := tx.Addresses.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}
		return tx.Addresses.Create(ctx, addr)
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *AccountService) DeleteAddress(ctx context.Context, userID, id string) error {
	return s.repos.Addresses.Delete(ctx, userID, id)
}

func (s *AccountService) Wishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.repos.Wishlist.List(ctx, userID)
}

func (s *AccountService) AddToWishlist(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.repos.Products.Get(ctx, productID); err != nil {
		return nil, err
	}
	return s.repos.Wishlist.Add(ctx, userID, productID)
}

func (s *AccountService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return s.repos.Wishlist.Remove(ctx, userID, productID)
}
