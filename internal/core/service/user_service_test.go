package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

type stubRoleRepo struct {
	roles  map[uint]string
	users  *stubUserRepo
	nextID uint
}

func newStubRoleRepo(users *stubUserRepo, names ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[uint]string), users: users, nextID: 1}
	for _, name := range names {
		r.roles[r.nextID] = name
		r.nextID++
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, name string) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing == name {
			return nil, domain.ErrRoleExists
		}
	}
	id := r.nextID
	r.nextID++
	r.roles[id] = name
	return &domain.Role{ID: id, Name: name}, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for id, existing := range r.roles {
		if existing == name {
			return &domain.Role{ID: id, Name: existing}, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Rename(_ context.Context, id uint, name string) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	for otherID, existing := range r.roles {
		if existing == name && otherID != id {
			return domain.ErrRoleExists
		}
	}
	r.roles[id] = name
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id uint) error {
	name, ok := r.roles[id]
	if !ok {
		return domain.ErrRoleNotFound
	}
	if r.users != nil {
		for _, u := range r.users.users {
			if u.Role == name {
				return domain.ErrRoleInUse
			}
		}
	}
	delete(r.roles, id)
	return nil
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for id := uint(1); id < r.nextID; id++ {
		if name, ok := r.roles[id]; ok {
			out = append(out, domain.Role{ID: id, Name: name})
		}
	}
	return out, nil
}

func newTestUserService(users *stubUserRepo, roles *stubRoleRepo) *UserService {
	return NewUserService(users, roles, NewPasswordHasher(), zerolog.Nop())
}

func TestUserService_CreateUser_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "admin", "user"))

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Password: "pass123",
		Role:     "user",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.PasswordHash == "pass123" || created.PasswordHash == "" {
		t.Fatalf("password was not hashed")
	}
	if created.Salt == "" {
		t.Fatalf("expected a stored salt")
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "user"))

	in := ports.CreateUserInput{Username: "bob", Password: "pass", Role: "user"}
	if _, err := svc.CreateUser(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_CreateUser_UnknownRole(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "user"))

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Password: "pass",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "user"))

	cases := []ports.CreateUserInput{
		{Username: "", Password: "pass", Role: "user"},
		{Username: "dave", Password: "", Role: "user"},
		{Username: "dave", Password: "pass", Role: ""},
	}
	for _, in := range cases {
		if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestUserService_UpdateUser_KeepsPasswordWhenEmpty(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(users, "user", "premium")
	svc := newTestUserService(users, roles)

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "erin", Password: "original", Role: "user",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		ID: created.ID, Username: "erin", Role: "premium",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != "premium" {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if updated.PasswordHash != created.PasswordHash || updated.Salt != created.Salt {
		t.Fatalf("credential changed although no password was given")
	}
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "user"))

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "frank", Password: "old-pass", Role: "user",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		ID: created.ID, Username: "frank", Role: "user", Password: "new-pass",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == created.PasswordHash {
		t.Fatalf("password hash did not change")
	}
	if updated.Salt == created.Salt {
		t.Fatalf("salt was reused across password changes")
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "user"))

	_, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		ID: 42, Username: "ghost", Role: "user",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser_SelfDeletionRefused(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "admin"))

	admin, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "root", Password: "pass", Role: "admin",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), admin.ID, admin.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("account was deleted despite the refusal: %v", err)
	}
}

func TestUserService_DeleteUser_MissingIDIsNoop(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users, "admin"))

	if err := svc.DeleteUser(context.Background(), 1, 99); err != nil {
		t.Fatalf("deleting a missing id should be a no-op, got %v", err)
	}
}

func TestUserService_DeleteRole_InUse(t *testing.T) {
	users := newStubUserRepo()
	roles := newStubRoleRepo(users, "user")
	svc := newTestUserService(users, roles)

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "grace", Password: "pass", Role: "user",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	role, err := roles.FindByName(context.Background(), "user")
	if err != nil {
		t.Fatalf("find role: %v", err)
	}
	if err := svc.DeleteRole(context.Background(), role.ID); !errors.Is(err, domain.ErrRoleInUse) {
		t.Fatalf("expected ErrRoleInUse, got %v", err)
	}
}

func TestUserService_RoleCatalog(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestUserService(users, newStubRoleRepo(users))

	role, err := svc.CreateRole(context.Background(), "coach")
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	if _, err := svc.CreateRole(context.Background(), "coach"); !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}

	if err := svc.RenameRole(context.Background(), role.ID, "mentor"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if err := svc.RenameRole(context.Background(), 99, "other"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}

	listed, err := svc.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "mentor" {
		t.Fatalf("unexpected catalog: %+v", listed)
	}
}
