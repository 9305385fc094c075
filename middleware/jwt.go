package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trainhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed bearer tokens. The signing key
// and lifetime are fixed at construction, there is no key rotation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue generates a JWT carrying the user id as subject claim
func (s *TokenService) Issue(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a token string and returns the embedded user id.
// Any signature, format or expiry problem comes back as ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return 0, ErrInvalidToken
	}

	// JWT number claims decode as float64
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}

// Protect is the auth gate applied to every guarded route. A missing or
// misformatted Authorization header is rejected with 403, a token that
// fails verification with 400. On success the user id is stored in the
// request context and the pipeline continues. The user row itself is not
// loaded here, see EnsureUserExists.
func (s *TokenService) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusForbidden, false, "No token provided!", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		userID, err := s.Verify(tokenString)
		if err != nil {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// EnsureUserExists re-resolves the token subject against the database.
// Routes where identity freshness matters chain it after Protect; the
// loaded user row is stored in the request context for the handler.
func EnsureUserExists(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusForbidden, false, "No token provided!", nil)
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Error verifying user!", nil)
		}

		c.Locals("user", user)
		return c.Next()
	}
}
