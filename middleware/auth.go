package middleware

import (
	"fmt"
	"strings"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// UserContextKey is where the authenticated profile is stored on the context.
const UserContextKey = "user"

// Claims are issued by the auth service. The subject is the profile id.
type Claims struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	ReferralCode string `json:"referral_code"`
	jwt.StandardClaims
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("token validation failed")
	}
	return claims, nil
}

// AuthMiddleware resolves the bearer token to a profile, creating the
// profile on first sight.
func AuthMiddleware(secret string, accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogDebug("Missing Authorization header on %s", c.Request.URL.Path)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogError("Invalid Bearer token format")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		profile, err := accounts.EnsureProfile(c.Request.Context(), services.Identity{
			ID:           claims.Subject,
			Email:        claims.Email,
			Name:         claims.Name,
			ReferralCode: claims.ReferralCode,
		})
		if err != nil {
			utils.LogError("Failed to load profile %s: %v", claims.Subject, err)
			utils.InternalServerError(c, "Failed to load profile", nil)
			c.Abort()
			return
		}

		c.Set(UserContextKey, *profile)
		utils.LogDebug("User %s authenticated", profile.ID)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := CurrentUser(c)
		if !ok {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		if !profile.Role.IsBackOffice() {
			utils.LogError("Non-admin user attempted admin access: %s", profile.ID)
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the profile set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.Profile, bool) {
	v, exists := c.Get(UserContextKey)
	if !exists {
		return models.Profile{}, false
	}
	profile, ok := v.(models.Profile)
	return profile, ok
}
