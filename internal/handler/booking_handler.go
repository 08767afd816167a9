package handler

import (
	"errors"
	"strconv"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/middleware"
	"beautybook/internal/service"
	"beautybook/pkg/response"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service service.BookingServicer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service service.BookingServicer) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking godoc
// @Summary      Book a beauty package
// @Description  Create a booking linking the authenticated user to the given beauty package
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Package ID"
// @Success      201  {object}  response.Response{data=models.Booking}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	packageID := c.Param("id")

	booking, err := h.service.CreateBooking(c.Request.Context(), userID, packageID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPackageNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrAlreadyBooked):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrUnauthorized):
			response.Unauthorized(c, "user not authenticated")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, booking)
}

// GetBooking godoc
// @Summary      Get booking by ID
// @Description  Retrieve a single booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, booking)
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Retrieve a paginated list of bookings with package and user details embedded
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        page      query     int  false  "Page number (default: 1)"
// @Param        pageSize  query     int  false  "Items per page (default: 10, max: 50)"
// @Success      200       {object}  response.Response{data=models.BookingListResponse}
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.service.ListBookings(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Description  Remove a booking owned by the authenticated user; returns the deleted record
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	id := c.Param("id")

	booking, err := h.service.DeleteBooking(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrBookingMissing):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrUnauthorized):
			response.Unauthorized(c, "user not authenticated")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, booking)
}
