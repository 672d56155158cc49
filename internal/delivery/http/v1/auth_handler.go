package v1

import (
	"net/http"

	"go-creators-backend/internal/delivery/http/response"
	"go-creators-backend/internal/domain"
	"go-creators-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Role     string `json:"role"`
	Country  string `json:"country"`
	City     string `json:"city"`
	About    string `json:"about"`
	Icon     string `json:"icon"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a creator
// @Description  Register a new creator with contact details and a password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	input := &domain.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Github:   req.Github,
		Linkedin: req.Linkedin,
		Role:     req.Role,
		Country:  req.Country,
		City:     req.City,
		About:    req.About,
		Icon:     req.Icon,
	}

	if err := h.authUC.Register(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "creator registered", nil)
}

// Login godoc
// @Summary      Log a creator in
// @Description  Verify email and password. Returns the creator id and name;
// @Description  no token is issued, the id is what clients use afterwards.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response{data=domain.LoginResult}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "welcome "+result.Name, result)
}
