package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// MonetizationHandler manages price rules, packages, coupons and payments.
type MonetizationHandler struct {
	service *service.MonetizationService
}

// NewMonetizationHandler constructs handler.
func NewMonetizationHandler(monetizationService *service.MonetizationService) *MonetizationHandler {
	return &MonetizationHandler{service: monetizationService}
}

// ListPriceRules GET /monetization/price-rules.
func (h *MonetizationHandler) ListPriceRules(c *fiber.Ctx) error {
	rules, err := h.service.ListPriceRules(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PriceRuleResponse, 0, len(rules))
	for i := range rules {
		items = append(items, priceRuleResponse(&rules[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePriceRule POST /monetization/price-rules.
func (h *MonetizationHandler) CreatePriceRule(c *fiber.Ctx) error {
	return h.savePriceRule(c, "")
}

// UpdatePriceRule PUT /monetization/price-rules/:id.
func (h *MonetizationHandler) UpdatePriceRule(c *fiber.Ctx) error {
	return h.savePriceRule(c, c.Params("id"))
}

func (h *MonetizationHandler) savePriceRule(c *fiber.Ctx, id string) error {
	var req dto.PriceRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	rule := &domain.PriceRule{
		ID:           id,
		Name:         req.Name,
		Type:         req.Type,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Active:       req.Active,
	}
	if err := h.service.SavePriceRule(c.Context(), rule); err != nil {
		return err
	}
	status := fiber.StatusOK
	if id == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": priceRuleResponse(rule)})
}

// TogglePriceRule POST /monetization/price-rules/:id/toggle.
func (h *MonetizationHandler) TogglePriceRule(c *fiber.Ctx) error {
	rule, err := h.service.TogglePriceRule(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": priceRuleResponse(rule)})
}

// DeletePriceRule DELETE /monetization/price-rules/:id.
func (h *MonetizationHandler) DeletePriceRule(c *fiber.Ctx) error {
	if err := h.service.DeletePriceRule(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPackages GET /monetization/packages.
func (h *MonetizationHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.service.ListPackages(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		items = append(items, packageResponse(&packages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePackage POST /monetization/packages.
func (h *MonetizationHandler) CreatePackage(c *fiber.Ctx) error {
	return h.savePackage(c, "")
}

// UpdatePackage PUT /monetization/packages/:id.
func (h *MonetizationHandler) UpdatePackage(c *fiber.Ctx) error {
	return h.savePackage(c, c.Params("id"))
}

func (h *MonetizationHandler) savePackage(c *fiber.Ctx, id string) error {
	var req dto.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	pack := &domain.Package{
		ID:               id,
		Name:             req.Name,
		Price:            req.Price,
		Period:           req.Period,
		IncludedListings: req.IncludedListings,
		Active:           req.Active,
	}
	if err := h.service.SavePackage(c.Context(), pack); err != nil {
		return err
	}
	status := fiber.StatusOK
	if id == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": packageResponse(pack)})
}

// TogglePackage POST /monetization/packages/:id/toggle.
func (h *MonetizationHandler) TogglePackage(c *fiber.Ctx) error {
	pack, err := h.service.TogglePackage(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": packageResponse(pack)})
}

// DeletePackage DELETE /monetization/packages/:id.
func (h *MonetizationHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.service.DeletePackage(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCoupons GET /monetization/coupons.
func (h *MonetizationHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.ListCoupons(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CouponResponse, 0, len(coupons))
	for i := range coupons {
		items = append(items, couponResponse(&coupons[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateCoupon POST /monetization/coupons.
func (h *MonetizationHandler) CreateCoupon(c *fiber.Ctx) error {
	return h.saveCoupon(c, "")
}

// UpdateCoupon PUT /monetization/coupons/:id.
func (h *MonetizationHandler) UpdateCoupon(c *fiber.Ctx) error {
	return h.saveCoupon(c, c.Params("id"))
}

func (h *MonetizationHandler) saveCoupon(c *fiber.Ctx, id string) error {
	var req dto.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	coupon := &domain.Coupon{
		ID:             id,
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		Value:          req.Value,
		ExpirationDate: req.ExpirationDate,
		UsageLimit:     req.UsageLimit,
		Active:         req.Active,
	}
	if err := h.service.SaveCoupon(c.Context(), coupon); err != nil {
		return err
	}
	status := fiber.StatusOK
	if id == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": couponResponse(coupon)})
}

// ToggleCoupon POST /monetization/coupons/:id/toggle.
func (h *MonetizationHandler) ToggleCoupon(c *fiber.Ctx) error {
	coupon, err := h.service.ToggleCoupon(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": couponResponse(coupon)})
}

// DeleteCoupon DELETE /monetization/coupons/:id.
func (h *MonetizationHandler) DeleteCoupon(c *fiber.Ctx) error {
	if err := h.service.DeleteCoupon(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPayments GET /monetization/payments.
func (h *MonetizationHandler) ListPayments(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	payments, err := h.service.ListPayments(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		items = append(items, dto.PaymentResponse{
			ID:                payment.ID,
			UserEmail:         payment.UserEmail,
			ProductName:       payment.ProductName,
			Amount:            payment.Amount,
			Status:            payment.Status,
			CouponApplied:     payment.CouponApplied,
			ExternalReference: payment.ExternalReference,
			CreatedAt:         payment.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Revenue GET /monetization/revenue.
func (h *MonetizationHandler) Revenue(c *fiber.Ctx) error {
	revenue, err := h.service.Revenue(c.Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RevenueResponse{Total: revenue.Total, ThisMonth: revenue.ThisMonth}})
}

func priceRuleResponse(rule *domain.PriceRule) dto.PriceRuleResponse {
	return dto.PriceRuleResponse{
		ID:           rule.ID,
		Name:         rule.Name,
		Type:         rule.Type,
		Price:        rule.Price,
		DurationDays: rule.DurationDays,
		Active:       rule.Active,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}

func packageResponse(pack *domain.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:               pack.ID,
		Name:             pack.Name,
		Price:            pack.Price,
		Period:           pack.Period,
		IncludedListings: pack.IncludedListings,
		Active:           pack.Active,
		CreatedAt:        pack.CreatedAt,
		UpdatedAt:        pack.UpdatedAt,
	}
}

func couponResponse(coupon *domain.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:             coupon.ID,
		Code:           coupon.Code,
		DiscountType:   coupon.DiscountType,
		Value:          coupon.Value,
		ExpirationDate: coupon.ExpirationDate,
		UsageLimit:     coupon.UsageLimit,
		UsageCount:     coupon.UsageCount,
		Active:         coupon.Active,
		CreatedAt:      coupon.CreatedAt,
		UpdatedAt:      coupon.UpdatedAt,
	}
}
