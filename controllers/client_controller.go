package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

// guestFields is the v1 wire contract for guest rows.
var guestFields = []utils.Field{
	{Entity: "Guest", Column: "id"},
	{Entity: "GivenName", Column: "value"},
	{Entity: "FamilyName", Column: "value"},
	{Entity: "Guest", Column: "age"},
	{Entity: "Guest", Column: "passport_series"},
	{Entity: "Guest", Column: "passport_number"},
}

type ClientController struct {
	Guests *services.GuestService
}

func NewClientController(guests *services.GuestService) *ClientController {
	return &ClientController{Guests: guests}
}

func guestWireRows(rows []services.GuestRow) []map[string]any {
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{r.ID, r.GivenName, r.FamilyName, r.Age, r.PassportSeries, r.PassportNumber})
	}
	return utils.SerializeRows(guestFields, values)
}

// ListGuests handles GET /client.
func (ctl *ClientController) ListGuests(c *gin.Context) {
	rows, err := ctl.Guests.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guestWireRows(rows))
}

// GetGuest handles GET /client/:id.
func (ctl *ClientController) GetGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := ctl.Guests.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guestWireRows([]services.GuestRow{row}))
}

// CreateGuest handles POST /client.
func (ctl *ClientController) CreateGuest(c *gin.Context) {
	var in services.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id, err := ctl.Guests.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateGuest handles PUT /client/:id.
func (ctl *ClientController) UpdateGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := ctl.Guests.Update(id, in); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "updated")
}

// DeleteGuest handles DELETE /client/:id.
func (ctl *ClientController) DeleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Guests.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "deleted")
}
