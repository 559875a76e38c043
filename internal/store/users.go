package store

import (
	"database/sql"
	"fmt"
)

// User 관리자 계정 행
type User struct {
	Email    string
	Role     string // admin | editor
	Salt     string
	PassHash string
}

// GetUser 이메일로 계정 조회 (없으면 false)
func (s *Store) GetUser(email string) (User, bool, error) {
	var u User
	err := s.db.QueryRow(
		"SELECT email, role, salt, pass_hash FROM users WHERE email = ?", email).
		Scan(&u.Email, &u.Role, &u.Salt, &u.PassHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, false, nil
		}
		return User{}, false, fmt.Errorf("failed to get user: %w", err)
	}
	return u, true, nil
}

// PutUser 계정 upsert
func (s *Store) PutUser(u User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (email, role, salt, pass_hash) VALUES (?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET role = ?, salt = ?, pass_hash = ?
	`, u.Email, u.Role, u.Salt, u.PassHash, u.Role, u.Salt, u.PassHash)
	if err != nil {
		return fmt.Errorf("failed to put user: %w", err)
	}
	return nil
}

// CountUsers 계정 수
func (s *Store) CountUsers() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
