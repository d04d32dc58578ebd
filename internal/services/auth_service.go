package services

import (
	"context"
	cryptorand "crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// AuthService implements the invite gate. Officers sign in with their
// roster email and the shared invite code; a matching pair yields a
// short-lived session token. This gates the light-admin pages as a
// convenience, not as a hardened security boundary — but the code is
// checked against a real argon2 hash rather than a toy checksum, so a
// deployment can rotate to per-member credentials without reworking
// the flow.
type AuthService struct {
	store     *seed.Store
	redis     *redis.Client
	validator *validator.Validate
}

// LoginRequest is the invite-gate sign-in payload.
// @Description Invite gate sign-in structure
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email" example:"sga2029.treasurer@university.edu"` // Roster email
	InviteCode string `json:"inviteCode" validate:"required,min=6" example:"go-owls-2029"`                // Shared invite code
}

// AuthResponse carries the session token and the signed-in officer.
// @Description Session response structure
type AuthResponse struct {
	Token  string            `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // JWT session token
	Member models.TeamMember `json:"member"`                                                  // Signed-in officer
}

func NewAuthService(store *seed.Store, redisClient *redis.Client) *AuthService {
	return &AuthService{
		store:     store,
		redis:     redisClient,
		validator: validator.New(),
	}
}

// Login signs an officer in through the invite gate
// @Summary Sign in
// @Description Exchange a roster email and the invite code for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Sign-in request"
// @Success 200 {object} AuthResponse "Session created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unknown email or wrong invite code"
// @Router /auth/login [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] Sign-in attempt from IP: %s", r.RemoteAddr)

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req LoginRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := s.validator.Struct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	member, ok := s.store.MemberByEmail(strings.ToLower(req.Email))
	if !ok {
		log.Printf("[AUTH] Sign-in rejected, email not on roster")
		SendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}

	if !verifyInviteCode(req.InviteCode) {
		log.Printf("[AUTH] Sign-in rejected for %s, wrong invite code", member.ID)
		SendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}

	token, err := generateSessionToken(member)
	if err != nil {
		log.Printf("[AUTH] Token generation failed for %s: %v", member.ID, err)
		SendErrorResponse(w, "Failed to create session", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[AUTH] Session created for %s (%s)", member.ID, member.Role)
	writeJSON(w, AuthResponse{Token: token, Member: member})
}

// Logout ends the session by blacklisting its token
// @Summary Sign out
// @Description Blacklist the presented session token until it would expire
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Sign-out confirmed"
// @Router /auth/logout [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token != "" && len(token) > 7 {
		token = token[7:] // Remove "Bearer " prefix

		if s.redis != nil {
			ctx := context.Background()
			key := fmt.Sprintf("blacklist:%s", token)
			expiry := time.Duration(viper.GetInt("session.expiry_hours")) * time.Hour
			if err := s.redis.Set(ctx, key, "1", expiry).Err(); err != nil {
				log.Printf("[AUTH] Failed to blacklist token: %v", err)
			}
		}
	}

	writeJSON(w, map[string]string{"message": "Signed out"})
}

// GetSession echoes the signed-in officer for the current token
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TeamMember
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (s *AuthService) GetSession(w http.ResponseWriter, r *http.Request) {
	memberID, ok := r.Context().Value("memberID").(string)
	if !ok || memberID == "" {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	member, ok := s.store.MemberByID(memberID)
	if !ok {
		SendErrorResponse(w, "Session member no longer on roster", http.StatusUnauthorized, nil)
		return
	}
	writeJSON(w, member)
}

func generateSessionToken(member models.TeamMember) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"member_id": member.ID,
		"role":      string(member.Role),
		"exp":       time.Now().Add(time.Duration(viper.GetInt("session.expiry_hours")) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(viper.GetString("session.secret_key")))
}

// verifyInviteCode checks the presented code against the configured
// argon2 hash. When no hash is configured (local development) it falls
// back to a constant-time comparison with the configured plain code.
func verifyInviteCode(code string) bool {
	if hashed := viper.GetString("invite.code_hash"); hashed != "" {
		return verifyArgon2(code, hashed)
	}
	plain := viper.GetString("invite.code")
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(plain)) == 1
}

// HashInviteCode produces the salt$hash form stored in configuration.
func HashInviteCode(code string) (string, error) {
	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := cryptorand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(code), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyArgon2(code, hashed string) bool {
	parts := strings.Split(hashed, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(code), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return subtle.ConstantTimeCompare(hash, computed) == 1
}
