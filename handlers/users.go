package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"dayplan/logger"
	"dayplan/store"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type UserHandler struct {
	store  UserStore
	secret []byte
}

func NewUserHandler(store UserStore, secret []byte) *UserHandler {
	return &UserHandler{store: store, secret: secret}
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) signToken(userID int64, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", err)
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	if _, err := h.store.Create(r.Context(), req.Username, string(hash)); err != nil {
		writeError(w, http.StatusBadRequest, "User exists or DB error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created"})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Error("get user", err)
		}
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, err := h.signToken(user.ID, accessTokenTTL)
	if err != nil {
		logger.Error("sign access token", err)
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	refreshToken, err := h.signToken(user.ID, refreshTokenTTL)
	if err != nil {
		logger.Error("sign refresh token", err)
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil || !token.Valid {
		writeError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	accessToken, err := h.signToken(claims.UserID, accessTokenTTL)
	if err != nil {
		logger.Error("sign access token", err)
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}
	refreshToken, err := h.signToken(claims.UserID, refreshTokenTTL)
	if err != nil {
		logger.Error("sign refresh token", err)
		writeError(w, http.StatusInternalServerError, "Token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}
