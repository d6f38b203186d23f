package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	// ErrUnauthenticated is returned when a request carries no usable bearer token.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrRoleNotAllowed is returned when the caller's role may not use a route.
	ErrRoleNotAllowed = errors.New("role not allowed for this route")
)

const principalContextKey = "parcel.principal"

// Claims is the JWT payload issued by the identity provider. The subject is the
// caller's stable identity.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and turns them into principals.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	return &Authenticator{secret: []byte(secret)}, nil
}

// IssueToken signs a token for identity and role that expires after ttl.
func (a *Authenticator) IssueToken(identity string, role kernel.Role, ttl time.Duration) (string, error) {
	if _, err := kernel.NewPrincipal(identity, role); err != nil {
		return "", err
	}
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Principal parses and verifies a raw token.
func (a *Authenticator) Principal(raw string) (kernel.Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Principal{}, errors.Join(ErrUnauthenticated, err)
	}
	if !token.Valid {
		return kernel.Principal{}, ErrUnauthenticated
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Principal{}, errors.Join(ErrUnauthenticated, err)
	}
	principal, err := kernel.NewPrincipal(claims.Subject, role)
	if err != nil {
		return kernel.Principal{}, errors.Join(ErrUnauthenticated, err)
	}
	return principal, nil
}

// Middleware authenticates every /api request and stores the principal on the
// echo context. Other paths pass through untouched.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !strings.HasPrefix(ctx.Request().URL.Path, "/api/") {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return ErrUnauthenticated
			}

			principal, err := a.Principal(strings.TrimSpace(raw))
			if err != nil {
				return err
			}
			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// roleByPrefix lists the routes reserved to one role. /api/common is open to both.
var roleByPrefix = map[string]kernel.Role{
	"/api/customer/": kernel.RoleCustomer,
	"/api/officer/":  kernel.RoleOfficer,
}

// RequireRole rejects callers whose role does not match the route prefix.
// It must run after Authenticator.Middleware.
func RequireRole() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Request().URL.Path
			for prefix, role := range roleByPrefix {
				if !strings.HasPrefix(path, prefix) {
					continue
				}
				principal, err := principalFrom(ctx)
				if err != nil {
					return err
				}
				if principal.Role() != role {
					return ErrRoleNotAllowed
				}
			}
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (kernel.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(kernel.Principal)
	if !ok {
		return kernel.Principal{}, ErrUnauthenticated
	}
	return principal, nil
}

// statusForAuth maps authentication failures; ok is false for other errors.
func statusForAuth(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, true
	case errors.Is(err, ErrRoleNotAllowed):
		return http.StatusForbidden, true
	default:
		return 0, false
	}
}
