package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

// rentFields is the v1 wire contract for booking rows. The query joins the
// guest association, so each booking-guest pair is one row.
var rentFields = []utils.Field{
	{Entity: "Booking", Column: "id"},
	{Entity: "Booking", Column: "room_number"},
	{Entity: "Booking", Column: "from_date"},
	{Entity: "Booking", Column: "to_date"},
	{Entity: "Booking", Column: "total_price"},
	{Entity: "Guest", Column: "id"},
}

type RentController struct {
	Bookings *services.BookingService
}

func NewRentController(bookings *services.BookingService) *RentController {
	return &RentController{Bookings: bookings}
}

type rentPayload struct {
	RoomNumber int    `json:"room_number"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	GuestIDs   []uint `json:"guest_ids"`
}

func (p rentPayload) toInput() (services.BookingInput, error) {
	from, err := time.Parse(utils.DateFormat, p.FromDate)
	if err != nil {
		return services.BookingInput{}, err
	}
	to, err := time.Parse(utils.DateFormat, p.ToDate)
	if err != nil {
		return services.BookingInput{}, err
	}
	return services.BookingInput{
		RoomNumber: p.RoomNumber,
		FromDate:   from,
		ToDate:     to,
		GuestIDs:   p.GuestIDs,
	}, nil
}

func bookingWireRows(rows []services.BookingRow) []map[string]any {
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{r.ID, r.RoomNumber, r.FromDate, r.ToDate, r.TotalPrice, r.GuestID})
	}
	return utils.SerializeRows(rentFields, values)
}

// ListBookings handles GET /rent.
func (ctl *RentController) ListBookings(c *gin.Context) {
	rows, err := ctl.Bookings.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingWireRows(rows))
}

// GetBooking handles GET /rent/:id.
func (ctl *RentController) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := ctl.Bookings.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingWireRows(rows))
}

// CreateBooking handles POST /rent.
func (ctl *RentController) CreateBooking(c *gin.Context) {
	var payload rentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	in, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "dates must be YYYY-MM-DD")
		return
	}
	id, err := ctl.Bookings.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateBooking handles PUT /rent/:id. The update replaces room, dates,
// price and the whole guest set.
func (ctl *RentController) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload rentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	in, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "dates must be YYYY-MM-DD")
		return
	}
	if err := ctl.Bookings.Update(id, in); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "updated")
}

// DeleteBooking handles DELETE /rent/:id.
func (ctl *RentController) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Bookings.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "deleted")
}
