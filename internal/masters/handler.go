package masters

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// 選択リスト用の名前一覧（どちらも名前の昇順）
	r.GET("/employees", h.ListEmployees)
	r.GET("/clients", h.ListClients)
}

func (h *Handler) ListEmployees(c *gin.Context) {
	names, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, names)
}

func (h *Handler) ListClients(c *gin.Context) {
	names, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, names)
}

// ---------- helpers ----------

type errorDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorFromErr(err error) errorDTO {
	var e errorDTO
	if api, ok := err.(*APIError); ok {
		e.Error.Code = api.Code
		e.Error.Message = api.Message
		return e
	}
	e.Error.Code = CodeInternal
	e.Error.Message = err.Error()
	return e
}
