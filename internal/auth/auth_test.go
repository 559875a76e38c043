package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/leoavce/hrd-dashboard/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "hrdboard.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st)
}

func TestEnsureUser_BootstrapAndNoOverwrite(t *testing.T) {
	svc := newTestService(t)

	if err := svc.EnsureUser("Admin@Local", "secret1", RoleAdmin); err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	// 기존 계정은 비밀번호를 바꾸지 않는다
	if err := svc.EnsureUser("admin@local", "other-password", RoleAdmin); err != nil {
		t.Fatalf("ensure user again: %v", err)
	}
	if _, err := svc.Login("admin@local", "secret1"); err != nil {
		t.Fatalf("original password must still work: %v", err)
	}
	if _, err := svc.Login("admin@local", "other-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureUser_Validation(t *testing.T) {
	svc := newTestService(t)

	if err := svc.EnsureUser("", "pw", RoleAdmin); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if err := svc.EnsureUser("a@b", "pw", "superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestLogin_SessionLifecycle(t *testing.T) {
	svc := newTestService(t)

	if err := svc.EnsureUser("editor@local", "pw123", RoleEditor); err != nil {
		t.Fatalf("ensure user: %v", err)
	}

	sess, err := svc.Login("editor@local", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" || sess.Role != RoleEditor {
		t.Fatalf("unexpected session: %+v", sess)
	}

	got, ok := svc.Resolve(sess.Token)
	if !ok || got.Email != "editor@local" {
		t.Fatalf("resolve failed: %+v %v", got, ok)
	}

	svc.Logout(sess.Token)
	if _, ok := svc.Resolve(sess.Token); ok {
		t.Fatalf("session must be gone after logout")
	}
}

func TestLogin_UnknownUserAndBadPassword(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Login("ghost@local", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if err := svc.EnsureUser("a@local", "right", RoleEditor); err != nil {
		t.Fatalf("ensure user: %v", err)
	}
	if _, err := svc.Login("a@local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPassword_SaltMatters(t *testing.T) {
	t.Parallel()

	if HashPassword("pw", "salt1") == HashPassword("pw", "salt2") {
		t.Fatalf("different salts must give different hashes")
	}
	if HashPassword("pw", "salt1") != HashPassword("pw", "salt1") {
		t.Fatalf("hash must be deterministic")
	}
}
