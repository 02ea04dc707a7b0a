package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"

	"shopBack/internal/models"
)

// Authenticator turns a Bearer token into a request-scoped Principal.
// It is the authentication collaborator of the order access gateway, which
// runs it itself instead of relying on route middleware so the gateway
// controls the check order.
type Authenticator struct {
	Secret []byte
}

func (a *Authenticator) Authenticate(r *http.Request) (models.Principal, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return models.Principal{}, false
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.Secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return models.Principal{}, false
	}

	return models.Principal{
		UserID:  int(claims.UserID),
		IsAdmin: claims.Role == "admin",
	}, true
}
