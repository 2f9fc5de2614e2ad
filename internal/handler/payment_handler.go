package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
	"github.com/learnhub-app/learnhub-backend/internal/models"
	"github.com/learnhub-app/learnhub-backend/internal/service"
	"github.com/learnhub-app/learnhub-backend/pkg/payment"
	"github.com/learnhub-app/learnhub-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	accessService  *service.AccessService
	stripeService  *payment.StripeService
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, accessService *service.AccessService, stripeService *payment.StripeService, validator *utils.Validator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		accessService:  accessService,
		stripeService:  stripeService,
		validator:      validator,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Course ID is required"))
	}

	session, err := h.paymentService.CreateCheckoutSession(userID, req.CourseID)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(session, ""))
}

// HandleStripeWebhook is the payment provider's delivery endpoint. The
// raw body is verified against the injected endpoint secret before any
// processing; after verification, errors map to 404 (unknown session,
// logged as an anomaly) or 500 (retryable), and every other outcome acks
// with the event type so the provider stops redelivering.
func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := h.stripeService.VerifyWebhookEvent(payload, signatureHeader)
	if err != nil {
		h.logger.Warn("webhook rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	eventType, err := h.paymentService.HandleWebhookEvent(&event)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		h.logger.Error("webhook processing failed",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal Server Error"))
	}

	return c.JSON(fiber.Map{
		"received":   true,
		"event_type": eventType,
	})
}

func (h *PaymentHandler) GetAccessStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	clientHint := c.Query("hint") == "true"

	status, err := h.accessService.Resolve(userID, uint(courseID), clientHint)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(status, ""))
}

func (h *PaymentHandler) GetCourseDetailWithStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	detail, err := h.accessService.CourseDetailWithStatus(userID, uint(courseID))
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(detail, ""))
}

func (h *PaymentHandler) CheckPaymentStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	status, err := h.paymentService.CheckPaymentStatus(userID, c.Query("session_id"))
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(status, ""))
}

func (h *PaymentHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.paymentService.GetCompletedPurchases()
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"purchases": purchases}, ""))
}

func (h *PaymentHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	purchases, err := h.paymentService.GetUserPurchaseHistory(userID)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(purchases, ""))
}
