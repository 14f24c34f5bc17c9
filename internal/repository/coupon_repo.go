package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(coupon *model.Coupon) error
	FindByCode(code string) (*model.Coupon, error)
	FindAll() ([]model.Coupon, error)
	Update(coupon *model.Coupon) error
}

type couponRepo struct {
	db *gorm.DB
}

func NewCouponRepo(db *gorm.DB) CouponRepository {
	return &couponRepo{db}
}

func (r *couponRepo) Create(coupon *model.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *couponRepo) FindByCode(code string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepo) FindAll() ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := r.db.Order("code ASC").Find(&coupons).Error
	return coupons, err
}

func (r *couponRepo) Update(coupon *model.Coupon) error {
	return r.db.Save(coupon).Error
}
