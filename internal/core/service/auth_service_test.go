package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + string(rune('0'+r.nextID))
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, NewBcryptHasher(4), NewJWTTokenService("secret"), time.Hour, 6, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "A@X.com",
		Password: "Secret123",
		Contact:  "555-0100",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RolePatient {
		t.Fatalf("self-registration must fix role to patient, got %s", user.Role)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.PasswordHash == "Secret123" {
		t.Fatalf("password stored in plaintext")
	}

	ok, err := NewBcryptHasher(4).Verify("Secret123", user.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := []ports.RegisterInput{
		{Username: "", Email: "a@x.com", Password: "Secret123"},
		{Username: "alice", Email: "", Password: "Secret123"},
		{Username: "alice", Email: "a@x.com", Password: ""},
		{Username: "alice", Email: "a@x.com", Password: "short"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@x.com", Password: "Secret123",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	before := len(repo.users)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "other@x.com", Password: "Secret123",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "other", Email: "bob@x.com", Password: "Secret123",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}

	if len(repo.users) != before {
		t.Fatalf("failed registration must not change the store: %d -> %d", before, len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "Secret123", Contact: "555-0100",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, identifier := range []string{"alice", "a@x.com", "A@X.com"} {
		result, err := svc.Login(context.Background(), identifier, "Secret123")
		if err != nil {
			t.Fatalf("login with %q failed: %v", identifier, err)
		}
		if result.Token == "" {
			t.Fatalf("expected non-empty token")
		}
		if result.Role != domain.RolePatient {
			t.Fatalf("unexpected role: %s", result.Role)
		}
		if result.Redirect != "/patient/dashboard" {
			t.Fatalf("unexpected redirect: %s", result.Redirect)
		}
	}
}

func TestAuthService_Login_TokenVerifiable(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewJWTTokenService("secret")
	svc := NewAuthService(repo, NewBcryptHasher(4), tokens, time.Hour, 6, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "Secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("token subject %q, want %q", claims.Subject, user.ID)
	}
	if claims.Role != domain.RolePatient {
		t.Fatalf("token role %q, want patient", claims.Role)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "Secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "alice", "WrongPass")
	_, noUser := svc.Login(context.Background(), "nobody", "anything")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure shapes differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_CorruptHashIsServerFault(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	repo.users["user_1"] = &domain.User{
		ID: "user_1", Username: "broken", Email: "b@x.com",
		PasswordHash: "not-a-bcrypt-hash", Role: domain.RolePatient,
	}

	_, err := svc.Login(context.Background(), "broken", "whatever")
	if !errors.Is(err, domain.ErrInvalidHashFormat) {
		t.Fatalf("expected ErrInvalidHashFormat, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("corrupt hash must not look like a login failure")
	}
}
