package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/mindengage-cbt/internal/rbac"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	minStudentID = 3
	minExamCode  = 4
)

type AuthService struct {
	hmac []byte

	adminUser string
	adminHash []byte
	examCode  string
}

type Options struct {
	AdminUser     string
	AdminPassHash string // bcrypt
	// ExamCode, when set, must match exactly; otherwise any code of four or
	// more characters is accepted.
	ExamCode string
}

func NewAuthService(secret string, opts Options) *AuthService {
	return &AuthService{
		hmac:      []byte(secret),
		adminUser: opts.AdminUser,
		adminHash: []byte(opts.AdminPassHash),
		examCode:  opts.ExamCode,
	}
}

type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"` // "student" or "admin"
	jwt.RegisteredClaims
}

func (a *AuthService) IssueJWT(sub, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Sub:  sub,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mindengage-cbt",
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(8 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("auth: invalid token")
	}
	return c, nil
}

var (
	errShortStudentID = errors.New("student id must be at least 3 characters long")
	errShortExamCode  = errors.New("exam code must be at least 4 characters long")
	errBadCredentials = errors.New("invalid credentials")
)

type loginRequest struct {
	Role      string `json:"role"`
	StudentID string `json:"studentId"`
	ExamCode  string `json:"examCode"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// authenticate returns the token subject for a login request.
func (a *AuthService) authenticate(req loginRequest) (string, error) {
	switch req.Role {
	case RoleStudent, "":
		id := strings.TrimSpace(req.StudentID)
		code := strings.TrimSpace(req.ExamCode)
		if len(id) < minStudentID {
			return "", errShortStudentID
		}
		if len(code) < minExamCode {
			return "", errShortExamCode
		}
		if a.examCode != "" && code != a.examCode {
			return "", errBadCredentials
		}
		return id, nil
	case RoleAdmin:
		if req.Username != a.adminUser {
			return "", errBadCredentials
		}
		if err := bcrypt.CompareHashAndPassword(a.adminHash, []byte(req.Password)); err != nil {
			return "", errBadCredentials
		}
		return req.Username, nil
	default:
		return "", errBadCredentials
	}
}

// POST /auth/login
//
//	{ "role": "student", "studentId": "...", "examCode": "..." }
//	{ "role": "admin", "username": "...", "password": "..." }
func LoginHandler(a *AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sub, err := a.authenticate(req)
		switch {
		case errors.Is(err, errShortStudentID), errors.Is(err, errShortExamCode):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		role := req.Role
		if role == "" {
			role = RoleStudent
		}
		tok, err := a.IssueJWT(sub, role)
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok, "sub": sub, "role": role})
	}
}

// JWTMiddleware checks the bearer token and puts the caller's subject and
// role in the request context for rbac.
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			c, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			ctx := WithPrincipal(r.Context(), Principal{Sub: c.Sub, Role: c.Role})
			ctx = rbac.WithRole(ctx, c.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
