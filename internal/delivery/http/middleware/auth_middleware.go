package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"jobready-backend/config"
	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/internal/domain"
	"jobready-backend/pkg/auth"
	"jobready-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves an optional bearer token. Requests without a token
// continue anonymously; a token that fails verification is rejected.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				if jwksProvider == nil {
					return nil, fmt.Errorf("RS256 token received but JWKS_URL is not configured")
				}
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}, jwt.WithValidMethods([]string{"HS256", "RS256"}))

		if err != nil || !token.Valid {
			logger.Log.Warnw("Token validation failed", "error", err, "request_id", c.GetString("RequestID"))
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		sub, _ := claims["sub"].(string)
		if !ok || sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		user := &domain.User{ID: sub}
		user.Email, _ = claims["email"].(string)
		user.FirstName, _ = claims["given_name"].(string)
		user.LastName, _ = claims["family_name"].(string)
		if picture, _ := claims["picture"].(string); picture != "" {
			user.ProfileImageURL = &picture
		}
		if err := authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), user.Email)
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		c.Request = c.Request.WithContext(context.WithValue(ctx, domain.KeyUserEmail, user.Email))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
