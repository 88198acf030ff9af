package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/auth"
	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

const tokenCookie = "token"

// SignUp creates a new user account.
func (app *Application) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		app.Logger.Error("signup: failed to hash password", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: pwHash,
		FullName:     req.FullName,
	}

	if err := app.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.BadRequest(c, "Email already exists")
			return
		}
		app.Logger.Error("signup: failed to create user", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "could not create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "User created successfully"})
}

// Login verifies credentials and issues the token cookie.
func (app *Application) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	ctx := c.Request.Context()
	user, err := app.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		app.Logger.Error("login: lookup failed", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "Invalid password")
		return
	}

	token, err := auth.GenerateToken(app.JwtSecret, user.UserID, app.JwtTTL)
	if err != nil {
		app.Logger.Error("login: could not sign token", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	app.setTokenCookie(c, token, int(app.JwtTTL.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"msg":     fmt.Sprintf("%s logged in successfully", user.FullName),
		"user":    user,
	})
}

// GetUser returns the authenticated user's profile.
func (app *Application) GetUser(c *gin.Context) {
	user, err := app.Users.GetByID(c.Request.Context(), UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		app.Logger.Error("get_user: lookup failed", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// CheckToken validates the cookie and returns the user it belongs to.
func (app *Application) CheckToken(c *gin.Context) {
	app.GetUser(c)
}

// Logout clears the token cookie.
func (app *Application) Logout(c *gin.Context) {
	app.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Logged out successfully"})
}

// maximum avatar size accepted into memory
const maxAvatarBytes = 5 << 20

// UpdateProfile updates the display name and, when a file is attached,
// uploads the avatar to the CDN and stores the returned URL.
func (app *Application) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := app.Users.GetByID(ctx, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		app.Logger.Error("update_profile: lookup failed", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	if fullName := c.PostForm("fullName"); fullName != "" {
		user.FullName = fullName
	}

	if fh, err := c.FormFile("profilPhoto"); err == nil {
		if fh.Size > maxAvatarBytes {
			response.BadRequest(c, "profile photo too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			app.Logger.Error("update_profile: open upload failed", zap.Error(err))
			response.InternalError(c, "")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			app.Logger.Error("update_profile: read upload failed", zap.Error(err))
			response.InternalError(c, "")
			return
		}

		url, err := app.Uploader.Upload(ctx, fh.Filename, data)
		if err != nil {
			app.Logger.Error("update_profile: cdn upload failed", zap.Error(err))
			response.InternalError(c, "could not upload profile photo")
			return
		}
		user.ProfilePhoto = url
	}

	if err := app.Users.UpdateProfile(ctx, &user); err != nil {
		app.Logger.Error("update_profile: save failed", zap.Error(err))
		response.InternalError(c, "could not update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Profile updated successfully", "user": user})
}

func (app *Application) setTokenCookie(c *gin.Context, token string, maxAge int) {
	// cross-site frontend needs SameSite=None, which requires Secure
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(tokenCookie, token, maxAge, "/", "", true, true)
}
