package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/symplora/lms-backend-go/internal/domain/user"
)

const tokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token claims are invalid")

// Claims is the identity carried by an access token.
type Claims struct {
	UserID     string
	EmployeeID *string
	Role       user.Role
}

// HasEmployee reports whether the token belongs to a user linked to an employee.
func (c Claims) HasEmployee() bool {
	return c.EmployeeID != nil && *c.EmployeeID != ""
}

type Service interface {
	GenerateAccessToken(userID string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID string, employeeID *string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": valueOrNil(employeeID),
		"role":        string(role),
		"type":        tokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseClaims reads the identity out of a verified token's claim map, as
// returned by jwtauth.FromContext.
func ParseClaims(claims map[string]interface{}) (Claims, error) {
	if t, _ := claims["type"].(string); t != tokenTypeAccess {
		return Claims{}, ErrInvalidClaims
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidClaims
	}

	role := user.Role(stringClaim(claims, "role"))
	if !role.IsValid() {
		return Claims{}, ErrInvalidClaims
	}

	out := Claims{UserID: userID, Role: role}
	if employeeID := stringClaim(claims, "employee_id"); employeeID != "" {
		out.EmployeeID = &employeeID
	}
	return out, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}

func valueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
