package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/odutech/internal/domain/user"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/usecase/report"
)

type MeHandler struct {
	users     userdomain.Repository
	dashboard *report.BuildDashboard
}

func NewMeHandler(users userdomain.Repository, dashboard *report.BuildDashboard) *MeHandler {
	return &MeHandler{users: users, dashboard: dashboard}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "user_not_found")
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}

// Dashboard responde /users/:id/dashboard; só o próprio usuário acessa.
func (h *MeHandler) Dashboard(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	requested, ok := paramID(c, "id")
	if !ok {
		return
	}

	d, err := h.dashboard.Execute(c.Request.Context(), userID, requested)
	if err != nil {
		httperr.FromError(c, err, "dashboard_failed")
		return
	}

	httpresp.OK(c, d)
}
