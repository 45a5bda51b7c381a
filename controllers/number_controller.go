package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

// roomFields is the v1 wire contract for room/availability rows.
var roomFields = []utils.Field{
	{Entity: "Room", Column: "number"},
	{Entity: "Room", Column: "price_per_night"},
	{Entity: "Room", Column: "description"},
}

type NumberController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewNumberController(rooms *services.RoomService, availability *services.AvailabilityService) *NumberController {
	return &NumberController{Rooms: rooms, Availability: availability}
}

func roomWireRows(rows []services.RoomRow) []map[string]any {
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{r.Number, r.PricePerNight, r.Description})
	}
	return utils.SerializeRows(roomFields, values)
}

// pathNumber parses the :number path parameter.
func pathNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "room number must be a positive integer")
		return 0, false
	}
	return n, true
}

// QueryRooms handles GET /number and GET /number/:number. With no state it
// returns the catalogue; state=free or state=rented classifies rooms against
// their bookings at ?date= (default: now).
func (ctl *NumberController) QueryRooms(c *gin.Context) {
	var state services.RoomState
	switch c.Query("state") {
	case "":
		state = services.RoomStateAny
	case "free":
		state = services.RoomStateFree
	case "rented":
		state = services.RoomStateOccupied
	default:
		utils.JSONError(c, http.StatusBadRequest, "validation_error", "state must be free or rented")
		return
	}

	var at time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(utils.DateFormat, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_error", "date must be YYYY-MM-DD")
			return
		}
		at = parsed
	}

	var roomFilter *int
	if c.Param("number") != "" {
		n, ok := pathNumber(c)
		if !ok {
			return
		}
		roomFilter = &n
	}

	rows, err := ctl.Availability.QueryRooms(state, at, roomFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomWireRows(rows))
}

// CreateRoom handles POST /number.
func (ctl *NumberController) CreateRoom(c *gin.Context) {
	var in services.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := ctl.Rooms.Create(in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"number": in.Number})
}

// UpdateRoom handles PUT /number/:number.
func (ctl *NumberController) UpdateRoom(c *gin.Context) {
	number, ok := pathNumber(c)
	if !ok {
		return
	}
	var in services.RoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := ctl.Rooms.Update(number, in); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "updated")
}

// DeleteRoom handles DELETE /number/:number. Bookings referencing the room
// are left in place.
func (ctl *NumberController) DeleteRoom(c *gin.Context) {
	number, ok := pathNumber(c)
	if !ok {
		return
	}
	if err := ctl.Rooms.Delete(number); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "deleted")
}
