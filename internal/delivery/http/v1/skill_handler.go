package v1

import (
	"net/http"

	"go-creators-backend/internal/delivery/http/response"
	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := r.Group("/skills")
	{
		skills.GET("/:id", handler.List)
		skills.POST("/:id", handler.Replace)
	}
}

// List godoc
// @Summary      List skills
// @Description  Skill names for a creator in stored order; empty list if none
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Creator ID"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /skills/{id} [get]
func (h *SkillHandler) List(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		c.Error(err)
		return
	}

	names, err := h.skillUC.List(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "skills", gin.H{"skills": names})
}

// Replace godoc
// @Summary      Replace skills
// @Description  Replaces the creator's whole skill set with the given names
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id      path  int       true  "Creator ID"
// @Param        skills  body  []string  true  "Skill names"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /skills/{id} [post]
func (h *SkillHandler) Replace(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var names []string
	if err := c.ShouldBindJSON(&names); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.skillUC.Replace(c.Request.Context(), id, names); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "skills updated", nil)
}
