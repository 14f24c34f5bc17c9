package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/shopspring/decimal"
)

var ErrCouponCodeExists = errors.New("coupon code already exists")

type CouponService interface {
	CreateCoupon(req *CreateCouponRequest, creatorID string) (*model.Coupon, error)
	GetAllCoupons() ([]model.Coupon, error)
}

type CreateCouponRequest struct {
	Code               string          `json:"code" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
}

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) CreateCoupon(req *CreateCouponRequest, creatorID string) (*model.Coupon, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Percentage is bounded at write time; the engine never re-clamps it.
	hundred := decimal.NewFromInt(100)
	if req.DiscountPercentage.IsNegative() || req.DiscountPercentage.GreaterThan(hundred) {
		return nil, errors.New("discount percentage must be between 0 and 100")
	}

	existing, _ := s.couponRepo.FindByCode(req.Code)
	if existing != nil {
		return nil, ErrCouponCodeExists
	}

	coupon := &model.Coupon{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		IsActive:           true,
		ExpiresAt:          req.ExpiresAt,
	}
	coupon.CreatedBy = creatorID
	coupon.UpdatedBy = creatorID

	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) GetAllCoupons() ([]model.Coupon, error) {
	return s.couponRepo.FindAll()
}
