package attendance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes: 従業員向けの打刻エンドポイント
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// POST /clock-in
	r.POST("/clock-in", h.ClockIn)
	// POST /clock-out
	r.POST("/clock-out", h.ClockOut)
	// POST /overtime-request
	r.POST("/overtime-request", h.RequestOvertime)
}

// RegisterAdminRoutes: 管理者向けの閲覧・集計・エクスポート
func RegisterAdminRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/logs", h.ListLogs)
	r.GET("/stats", h.Stats)
	r.GET("/export/csv", h.ExportCSV)
	r.GET("/export/json", h.ExportJSON)
}

// ---------- handlers ----------

func (h *Handler) ClockIn(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.ClockIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.ClockOut(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) RequestOvertime(c *gin.Context) {
	var req OvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.RequestOvertime(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListLogs(c *gin.Context) {
	f := Filter{}
	if v := c.Query("employee"); v != "" {
		f.Employee = &v
	}
	if v := c.Query("client"); v != "" {
		f.Client = &v
	}
	if v := c.Query("type"); v != "" {
		f.Kind = &v
	}
	if v := c.Query("date_from"); v != "" {
		f.DateFrom = &v
	}
	if v := c.Query("date_to"); v != "" {
		f.DateTo = &v
	}

	res, err := h.svc.ListLogs(c.Request.Context(), f)
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Stats(c *gin.Context) {
	res, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	h.sendExport(c, h.svc.ExportCSV)
}

func (h *Handler) ExportJSON(c *gin.Context) {
	h.sendExport(c, h.svc.ExportJSON)
}

func (h *Handler) sendExport(c *gin.Context, export func(ctx context.Context) (ExportFile, error)) {
	f, err := export(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), errorFromErr(err))
		return
	}
	c.Header("Content-Disposition", attachmentHeader(f.Filename))
	c.Data(http.StatusOK, f.ContentType, f.Body)
}

// ---------- helpers ----------

type errorDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorBody(code Code, msg string) errorDTO {
	var e errorDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func errorFromErr(err error) errorDTO {
	var msg string
	var code Code = CodeInternal
	if api, ok := err.(*APIError); ok {
		code, msg = api.Code, api.Message
	} else {
		msg = err.Error()
	}
	return errorBody(code, msg)
}

func attachmentHeader(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, filename)
}
