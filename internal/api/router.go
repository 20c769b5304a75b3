package api

import (
	"errors"
	"net/http"
	"strconv"

	"ers-service/internal/service"
	"ers-service/internal/service/history"
	"ers-service/internal/ws"
	appErr "ers-service/pkg/errors"
	"ers-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Container
}

func RegisterRoutes(r *gin.Engine, services *service.Container) {
	handler := &Handler{services: services}
	wsHandler := ws.NewHandler(services.Rooms)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"rooms":   services.Rooms.Count(),
		})
	})

	v1 := r.Group("/ers/v1")
	{
		v1.POST("/rooms", handler.CreateRoom)
		v1.POST("/rooms/:code/join", handler.JoinRoom)
		v1.GET("/rooms/:code", handler.GetRoomState)
		v1.GET("/history", handler.ListHistory)
	}

	r.GET("/ws/room/:code", wsHandler.HandleRoomWS)
}

type createRoomBody struct {
	PlayerName string `json:"playerName" binding:"required"`
}

type joinRoomBody struct {
	PlayerName  string `json:"playerName" binding:"required"`
	ResumeToken string `json:"resumeToken"`
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var body createRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "playerName is required")
		return
	}

	info, err := h.services.Rooms.CreateRoom(body.PlayerName)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	response.Success(c, info)
}

func (h *Handler) JoinRoom(c *gin.Context) {
	var body joinRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "playerName is required")
		return
	}

	info, err := h.services.Rooms.JoinRoom(c.Param("code"), body.PlayerName, body.ResumeToken)
	if err != nil {
		switch {
		case errors.Is(err, appErr.ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "room not found")
		case errors.Is(err, appErr.ErrRoomFull):
			response.Error(c, http.StatusConflict, "room is full or game already started")
		default:
			response.Error(c, http.StatusInternalServerError, "failed to join room")
		}
		return
	}
	response.Success(c, info)
}

func (h *Handler) GetRoomState(c *gin.Context) {
	rt, err := h.services.Rooms.Get(c.Param("code"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "room not found")
		return
	}
	response.Success(c, rt.Snapshot())
}

func (h *Handler) ListHistory(c *gin.Context) {
	if h.services.History == nil {
		response.Success(c, history.ListResult{Items: nil})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.services.History.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list match history")
		return
	}
	response.Success(c, result)
}
