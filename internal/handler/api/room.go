package api

import (
	"errors"
	"net/http"

	"room-reservation/internal/domain/slot"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageFormField = "file"

var errMissingDate = errors.New("date query parameter is required")

type RoomHandler struct {
	cmds     commands.RoomCommands
	q        queries.RoomQueries
	schedule queries.ScheduleQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, schedule queries.ScheduleQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, schedule: schedule}
}

// @Summary List available rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /room [get]
func (h *RoomHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.ListAvailable(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondRooms(c, views)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Day grid
// @Description The sixteen one-hour slots of a day with occupancy and eligibility
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayGridResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room/{id}/slots [get]
func (h *RoomHandler) DayGrid(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	raw := c.Query("date")
	if raw == "" {
		abortBadRequest(c, errMissingDate, "Date is required")
		return
	}
	date, err := slot.ParseDate(raw)
	if err != nil {
		abortBadRequest(c, err, "Invalid date")
		return
	}

	grid, err := h.schedule.DayGrid(c.Request.Context(), id, date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// @Summary Evaluate selection
// @Description Replays the picked slot labels through the selection reducer and reports the resulting state
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.EvaluateSelectionRequest true "Picks in order"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room/{id}/selection [post]
func (h *RoomHandler) EvaluateSelection(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var req reqdto.EvaluateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}
	date, err := slot.ParseDate(req.Date)
	if err != nil {
		abortValidation(c, err)
		return
	}

	view, err := h.schedule.EvaluateSelection(c.Request.Context(), id, date, req.Slots)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List all rooms
// @Description Includes rooms that are not available for booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/room [get]
func (h *RoomHandler) AdminList(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondRooms(c, views)
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomIDResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/room [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/room/"+id.String())
	c.JSON(http.StatusCreated, resdto.RoomIDResponse{ID: id})
}

// @Summary Update room
// @Description Partial update; omitted fields keep their value
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/room/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Description Deletes the room with its reservations and image records
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/room/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload room image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param file formData file true "Image (jpeg, png, webp, gif)"
// @Success 201 {object} resdto.RoomImageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /admin/room/{id}/image [post]
func (h *RoomHandler) UploadImage(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	header, err := c.FormFile(imageFormField)
	if err != nil {
		abortBadRequest(c, err, "Image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		abortBadRequest(c, err, "Unreadable image file")
		return
	}
	defer file.Close()

	img, err := h.cmds.UploadImage(c.Request.Context(), id, commands.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomImage(img)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RoomHandler) respondRooms(c *gin.Context, views []*queries.RoomView) {
	resp, err := resdto.FromRoomViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseRoomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid room id", nil)
		return uuid.Nil, false
	}
	return id, true
}
