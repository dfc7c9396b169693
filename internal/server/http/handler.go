package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/server/models"
)

type registerRequest struct {
	Email       string          `json:"email" binding:"required"`
	Password    string          `json:"password" binding:"required"`
	FullName    string          `json:"full_name" binding:"required"`
	PhoneNumber string          `json:"phone_number" binding:"required"`
	UserType    models.UserType `json:"user_type" binding:"required"`
}

// userResponse is the public projection of a user. The credential never
// appears here.
type userResponse struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	UserType models.UserType `json:"user_type"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, UserType: u.UserType}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type vetProfileResponse struct {
	Qualifications      string `json:"qualifications"`
	VetCouncilRegNumber string `json:"vet_council_reg_number"`
}

type vetResponse struct {
	ID          int64              `json:"id"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	VetProfile  vetProfileResponse `json:"vet_profile"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if !req.UserType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user_type must be 'farmer' or 'vet'"})
		return
	}

	user, err := s.users.Register(ctx, req.Email, req.Password, req.FullName, req.PhoneNumber, req.UserType)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmailAlreadyRegistered),
			errors.Is(err, common.ErrorPhoneAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"detail": common.ErrorInternal.Error()})
		}
		return
	}

	s.logger.Info(ctx, "Registered", "email", user.Email, "user_type", user.UserType)
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// handleLogin implements the form-encoded credential exchange: the email
// travels in the username field.
func (s *Server) handleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.PostForm("username")
	password := c.PostForm("password")

	token, err := s.users.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorIncorrectEmailOrPassword) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": common.ErrorInternal.Error()})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: common.TokenType})
}

func (s *Server) handleMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) handleVets(c *gin.Context) {
	ctx := c.Request.Context()

	vets, err := s.vets.ListVerified(ctx)
	if err != nil {
		s.logger.Error(ctx, "vet listing failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": common.ErrorInternal.Error()})
		return
	}

	resp := make([]vetResponse, 0, len(vets))
	for _, v := range vets {
		resp = append(resp, vetResponse{
			ID:          v.User.ID,
			FullName:    v.User.FullName,
			Email:       v.User.Email,
			PhoneNumber: v.User.PhoneNumber,
			VetProfile: vetProfileResponse{
				Qualifications:      v.Profile.Qualifications,
				VetCouncilRegNumber: v.Profile.VetCouncilRegNumber,
			},
		})
	}
	c.JSON(http.StatusOK, resp)
}
