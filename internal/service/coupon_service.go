package service

import (
	"errors"
	"strings"
	"time"

	"restaurant-pos/internal/domain"
)

var ErrCouponNotFound = errors.New("invalid coupon code")

type CouponService struct {
	coupons CouponRepository
}

func NewCouponService(coupons CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

func (s *CouponService) List() ([]domain.Coupon, error) {
	return s.coupons.ListActive()
}

// Validate resolves a code against the active coupons and checks it for
// the given subtotal. Matching is case-insensitive. Callers re-invoke
// this whenever the subtotal changes; a previously accepted coupon is
// not grandfathered in.
func (s *CouponService) Validate(code string, subtotal float64, now time.Time) (domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.Coupon{}, ErrCouponNotFound
	}

	coupons, err := s.coupons.ListActive()
	if err != nil {
		return domain.Coupon{}, err
	}

	for _, c := range coupons {
		if !strings.EqualFold(c.Code, code) {
			continue
		}
		if err := c.ValidFor(subtotal, now); err != nil {
			return domain.Coupon{}, err
		}
		return c, nil
	}
	return domain.Coupon{}, ErrCouponNotFound
}
