package v1

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go-creators-backend/internal/delivery/http/response"
	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	creatorUC domain.CreatorUsecase
}

func NewProfileHandler(r *gin.RouterGroup, creatorUC domain.CreatorUsecase) {
	handler := &ProfileHandler{creatorUC: creatorUC}

	profile := r.Group("/profile")
	{
		profile.GET("/:id", handler.Get)
		profile.PUT("/:id", handler.Update)
		profile.DELETE("/:id", handler.Delete)
	}
}

// mutableFields are the form fields a profile update may touch. The field
// names double as column names; anything outside this list is ignored.
var mutableFields = []string{
	"name", "phone", "email", "github", "linkedin",
	"role", "country", "city", "about", "icon",
}

// collectProfileFields picks the supplied, non-empty form values. An empty
// value means "leave untouched", matching how clients submit partial forms.
func collectProfileFields(form url.Values) map[string]string {
	fields := make(map[string]string)
	for _, name := range mutableFields {
		if v := form.Get(name); v != "" {
			fields[name] = v
		}
	}
	return fields
}

func creatorID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("invalid creator id")
	}
	return id, nil
}

// Get godoc
// @Summary      Read a profile
// @Description  Full profile plus the creator's current skill names
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "Creator ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      404  {object}  response.Response
// @Router       /profile/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.creatorUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile", profile)
}

// Update godoc
// @Summary      Update a profile
// @Description  Sparse update from form fields; omitted fields stay as-is
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Param        id     path      int     true   "Creator ID"
// @Param        name   formData  string  false  "Display name"
// @Param        phone  formData  string  false  "Phone"
// @Param        email  formData  string  false  "Email"
// @Param        icon   formData  string  false  "Icon"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /profile/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		c.Error(err)
		return
	}

	// ParseMultipartForm also parses urlencoded bodies; ErrNotMultipart
	// just means the client sent the latter.
	if err := c.Request.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fields := collectProfileFields(c.Request.PostForm)
	if err := h.creatorUC.UpdateProfile(c.Request.Context(), id, fields); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", nil)
}

// Delete godoc
// @Summary      Delete a profile
// @Description  Removes the creator and every skill referencing it
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "Creator ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /profile/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.creatorUC.DeleteProfile(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "profile and skills deleted", nil)
}
