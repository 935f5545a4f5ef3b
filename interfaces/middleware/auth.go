package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
)

const principalKey = "auth.principal"

// Principal is the authenticated identity attached to the request context.
type Principal struct {
	UserID   bson.ObjectID
	Username string
	Email    string
	FullName string
}

// Auth verifies the bearer access token (or the accessToken cookie) and
// stores the resulting Principal on the gin context.
func Auth(accessTokenSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := tokenFromRequest(ctx)
		if raw == "" {
			abortUnauthorized(ctx, "unauthorized request")
			return
		}

		var claims model.UserClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(accessTokenSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(ctx, "invalid access token")
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			abortUnauthorized(ctx, "invalid access token")
			return
		}

		ctx.Set(principalKey, Principal{
			UserID:   userID,
			Username: claims.Username,
			Email:    claims.Email,
			FullName: claims.FullName,
		})
		ctx.Next()
	}
}

// CurrentUser returns the Principal set by Auth. The second result is false
// on routes that did not pass through Auth.
func CurrentUser(ctx *gin.Context) (Principal, bool) {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// OptionalAuth attaches a Principal when a valid token is present but never
// rejects the request. Listing routes use it to personalize projections.
func OptionalAuth(accessTokenSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := tokenFromRequest(ctx)
		if raw == "" {
			ctx.Next()
			return
		}
		var claims model.UserClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(accessTokenSecret), nil
		})
		if err != nil || !token.Valid {
			ctx.Next()
			return
		}
		if userID, err := bson.ObjectIDFromHex(claims.UserID); err == nil {
			ctx.Set(principalKey, Principal{
				UserID:   userID,
				Username: claims.Username,
				Email:    claims.Email,
				FullName: claims.FullName,
			})
		}
		ctx.Next()
	}
}

func tokenFromRequest(ctx *gin.Context) string {
	authorization := ctx.Request.Header.Get("Authorization")
	if after, found := strings.CutPrefix(authorization, "Bearer "); found && after != "" {
		return after
	}
	if cookie, err := ctx.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(apperror.Unauthorized(message)))
}
