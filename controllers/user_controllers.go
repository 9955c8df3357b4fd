package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

var (
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	surnameRegex = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register user baru (customer atau restaurateur)
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name            string         `json:"name" binding:"required"`
		Surname         string         `json:"surname" binding:"required"`
		Email           string         `json:"email" binding:"required,email"`
		Password        string         `json:"password" binding:"required,min=8,max=128"`
		ConfirmPassword string         `json:"confirm_password" binding:"required"`
		UserType        string         `json:"user_type" binding:"required"`
		Address         models.Address `json:"address"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !nameRegex.MatchString(req.Name) || !surnameRegex.MatchString(req.Surname) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and surname may only contain letters"))
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.RespondError(c, http.StatusBadRequest, errors.New("passwords do not match"))
		return
	}

	if req.UserType != models.UserTypeCustomer && req.UserType != models.UserTypeRestaurateur {
		utils.RespondError(c, http.StatusBadRequest, errors.New("user type must be 'customer' or 'restaurateur'"))
		return
	}

	var existing models.User
	if err := uc.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("user already exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: string(hashed),
		UserType: req.UserType,
		Address:  req.Address,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (type=%s)", user.Email, user.UserType)

	utils.RespondJSON(c, http.StatusCreated, "User created successfully", gin.H{
		"user_id": user.ID,
		"token":   token,
	})
}

// Login user -> return JWT
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_id":   user.ID,
		"user_type": user.UserType,
	})
}

// Logout -> blacklist token sampai kadaluarsa
func (uc *UserController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logout successful", nil)
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// UpdateUser -> hanya untuk akun sendiri
func (uc *UserController) UpdateUser(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	if uint(id) != actorID {
		utils.RespondError(c, http.StatusForbidden, errors.New("cannot update another user's account"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	var req struct {
		Name    *string         `json:"name"`
		Surname *string         `json:"surname"`
		Email   *string         `json:"email"`
		Address *models.Address `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User updated successfully", user)
}

// UpdatePassword -> verifikasi password lama sebelum mengganti
func (uc *UserController) UpdatePassword(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	if uint(id) != actorID {
		utils.RespondError(c, http.StatusForbidden, errors.New("cannot update another user's password"))
		return
	}

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("incorrect password"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := uc.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Password updated successfully", nil)
}

// DeleteUser -> hapus akun sendiri. Restoran milik restaurateur ikut
// terhapus; order lama tidak di-cascade dan tetap tersimpan.
func (uc *UserController) DeleteUser(c *gin.Context) {
	actorID, _, ok := currentUser(c)
	if !ok {
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	if uint(id) != actorID {
		utils.RespondError(c, http.StatusForbidden, errors.New("cannot delete another user's account"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if user.UserType == models.UserTypeRestaurateur {
		if err := uc.DB.Where("owner_id = ?", user.ID).Delete(&models.Restaurant{}).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %d deleted", user.ID)
	utils.RespondJSON(c, http.StatusOK, "User deleted successfully", nil)
}
