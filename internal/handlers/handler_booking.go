package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to stored bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.POST("", h.createBooking)
		bookings.PATCH("", h.batchUpdateBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.PUT("/:id", h.updateBooking)
		bookings.DELETE("/:id", h.deleteBooking)
	}
}

// listBookings returns one page of bookings. Pass nextToken from the previous
// response to continue.
func (h *bookingHandler) listBookings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	bookings, nextToken, err := h.bookingService.ListBookings(c.Request.Context(), params, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, dto.ListBookingsResponse{
		Bookings:  dto.ToBookingResponses(bookings),
		NextToken: nextToken,
	})
}

func (h *bookingHandler) getBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err, "Failed to retrieve booking")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *bookingHandler) createBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to create booking")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Booking created", slog.String("booking_id", booking.ID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// updateBooking edits one booking; the booking is flagged as modified.
func (h *bookingHandler) updateBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeServiceError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// batchUpdateBookings applies a table edit. Rows fail independently, so the
// response is 200 with per-row results, or 207 when some rows failed.
func (h *bookingHandler) batchUpdateBookings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BatchUpdateBookingsRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.bookingService.BatchUpdateBookings(c.Request.Context(), req, userID)
	status := http.StatusOK
	if res.Failed > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, res)
}

func (h *bookingHandler) deleteBooking(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeServiceError(c, err, "Failed to delete booking")
		return
	}
	c.Status(http.StatusNoContent)
}
