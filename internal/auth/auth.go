// Package auth 이메일+비밀번호 로그인과 베어러 토큰 세션.
// 쓰기 작업은 세션이 필요하고, 파괴적 작업(프로그램 삭제)은 admin 역할을 요구한다.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/leoavce/hrd-dashboard/internal/store"
)

const (
	// RoleAdmin 파괴적 작업까지 허용
	RoleAdmin = "admin"
	// RoleEditor 일반 편집 허용
	RoleEditor = "editor"
)

var (
	// ErrInvalidCredentials 이메일 또는 비밀번호 불일치
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session 로그인 세션
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}

// Service 계정/세션 서비스
type Service struct {
	store *store.Store

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewService 서비스 생성
func NewService(st *store.Store) *Service {
	return &Service{
		store:    st,
		sessions: make(map[string]Session),
	}
}

// HashPassword 솔트를 키로 한 HMAC-SHA256 해시
func HashPassword(password, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// newSalt 계정별 랜덤 솔트
func newSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// newToken URL-safe 랜덤 세션 토큰 (192bit)
func newToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// EnsureUser 계정이 없으면 생성 (부트스트랩용, 기존 계정은 건드리지 않음)
func (s *Service) EnsureUser(email, password, role string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}
	if role != RoleAdmin && role != RoleEditor {
		return fmt.Errorf("unknown role: %s", role)
	}

	_, found, err := s.store.GetUser(email)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	salt, err := newSalt()
	if err != nil {
		return err
	}
	return s.store.PutUser(store.User{
		Email:    email,
		Role:     role,
		Salt:     salt,
		PassHash: HashPassword(password, salt),
	})
}

// Login 이메일+비밀번호 검증 후 세션 발급
func (s *Service) Login(email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, found, err := s.store.GetUser(email)
	if err != nil {
		return Session{}, err
	}
	if !found {
		return Session{}, ErrInvalidCredentials
	}
	expected := HashPassword(password, u.Salt)
	if !hmac.Equal([]byte(expected), []byte(u.PassHash)) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return Session{}, err
	}
	sess := Session{Token: token, Email: u.Email, Role: u.Role, CreatedAt: time.Now()}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return sess, nil
}

// Logout 세션 폐기 (없는 토큰은 무시)
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Resolve 토큰으로 세션 조회
func (s *Service) Resolve(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}
