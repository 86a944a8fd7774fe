package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jakob2230/agridomMobileApp/internal/utils"
)

const (
	ContextUserID     = "userId"
	ContextEmployeeID = "employeeId"
	ContextStaff      = "staff"
)

func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing authorization"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization"})
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &utils.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(*utils.AccessClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid claims"})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextStaff, claims.Staff)
		c.Next()
	}
}

// RequireStaff gates the leave approval endpoints to staff accounts.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, _ := c.Get(ContextStaff)
		if staff != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Staff access required"})
			return
		}
		c.Next()
	}
}
