package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	auth "github.com/cndaip/chatroom/internal/service/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	store, err := auth.OpenSQLite(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return auth.NewService(store)
}

func TestRegisterAndVerify(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "小川", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !created {
		t.Fatal("expected registration to succeed")
	}

	ok, err := svc.Verify(ctx, "小川", "secret123")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("valid credentials rejected")
	}

	ok, err = svc.Verify(ctx, "小川", "wrong")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if created, err := svc.Register(ctx, "alice", "pw1"); err != nil || !created {
		t.Fatalf("first register: created=%v err=%v", created, err)
	}
	created, err := svc.Register(ctx, "alice", "pw2")
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if created {
		t.Fatal("duplicate username accepted")
	}

	// Original password still works.
	if ok, _ := svc.Verify(ctx, "alice", "pw1"); !ok {
		t.Fatal("original credential lost")
	}
}

func TestVerifyUnknownUser(t *testing.T) {
	svc := newService(t)

	ok, err := svc.Verify(context.Background(), "nobody", "pw")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("unknown user verified")
	}
}

func TestExists(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if ok, _ := svc.Exists(ctx, "alice"); ok {
		t.Fatal("exists before register")
	}
	if _, err := svc.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if ok, _ := svc.Exists(ctx, "alice"); !ok {
		t.Fatal("missing after register")
	}
}
