package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetups/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoleRepo implements domain.RoleRepository for tests.
type fakeRoleRepo struct {
	byName    map[string]*domain.Role
	listByUID map[string][]*domain.Role
	getErr    error
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		byName:    map[string]*domain.Role{domain.DefaultRole: {ID: "role-user", Name: domain.DefaultRole}},
		listByUID: make(map[string][]*domain.Role),
	}
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if r, ok := f.byName[name]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	return f.listByUID[userID], nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	err error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(user *domain.User) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + user.ID, nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	roles     map[string][]string
	getErr    error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
		roles:   make(map[string][]string),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = "created-1"
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		// Return a copy so tests can mutate without affecting stored
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateName(ctx context.Context, id, name string, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = name
	u.UpdatedAt = updatedAt
	return nil
}

func (f *fakeUserRepo) AssignRole(ctx context.Context, userID, roleID string) error {
	f.roles[userID] = append(f.roles[userID], roleID)
	return nil
}

func newTestUserService(users *fakeUserRepo, roles *fakeRoleRepo, mail domain.EmailService) domain.UserService {
	return NewUserService(users, roles, &fakePasswordHasher{}, &fakeTokenIssuer{}, mail, discardLogger(), 5*time.Second)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		seed     bool
		roleErr  error
		wantErr  error
		wantAny  bool
	}{
		{name: "success", email: " Satoshi@Example.com ", password: "@strongPassword123"},
		{name: "invalid email", email: "not-an-email", password: "@strongPassword123", wantErr: domain.ErrInvalidInput},
		{name: "short password", email: "a@b.com", password: "short", wantErr: domain.ErrInvalidInput},
		{name: "duplicate email", email: "satoshi@example.com", password: "@strongPassword123", seed: true, wantErr: domain.ErrDuplicateEmail},
		{name: "role lookup fails", email: "a@b.com", password: "@strongPassword123", roleErr: errors.New("db down"), wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			if tt.seed {
				users.byEmail["satoshi@example.com"] = &domain.User{ID: "u-0", Email: "satoshi@example.com"}
			}
			roles := newFakeRoleRepo()
			roles.getErr = tt.roleErr
			mail := &fakeEmailService{}
			svc := newTestUserService(users, roles, mail)

			token, user, err := svc.Register(ctx, " Satoshi Nakamoto ", tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAny {
				require.Error(t, err)
				assert.Empty(t, mail.welcome)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-created-1", token)
			assert.Equal(t, "Satoshi Nakamoto", user.Name)
			assert.Equal(t, "satoshi@example.com", user.Email)
			assert.Equal(t, "hash-@strongPassword123", user.PasswordHash)
			assert.Equal(t, []string{domain.DefaultRole}, user.Roles)
			assert.Equal(t, []string{"role-user"}, users.roles["created-1"])
			require.Len(t, mail.welcome, 1)
			assert.Equal(t, "satoshi@example.com", mail.welcome[0].Email)
		})
	}
}

func TestUserService_Register_WelcomeFailureIsNotFatal(t *testing.T) {
	mail := &fakeEmailService{err: errors.New("ses down")}
	svc := newTestUserService(newFakeUserRepo(), newFakeRoleRepo(), mail)

	token, _, err := svc.Register(context.Background(), "A", "a@b.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		getErr   error
		wantErr  error
		wantAny  bool
	}{
		{name: "success", email: "ALICE@example.com", password: "secret123"},
		{name: "wrong password", email: "alice@example.com", password: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@example.com", password: "secret123", wantErr: domain.ErrInvalidCredentials},
		{name: "repository error", email: "alice@example.com", password: "secret123", getErr: errors.New("db down"), wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			alice := &domain.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash-secret123"}
			users.byID[alice.ID] = alice
			users.byEmail[alice.Email] = alice
			users.getErr = tt.getErr
			roles := newFakeRoleRepo()
			roles.listByUID["u-1"] = []*domain.Role{{ID: "role-user", Name: "USER"}, {ID: "role-admin", Name: "ADMIN"}}
			svc := newTestUserService(users, roles, nil)

			token, user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAny {
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-u-1", token)
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, []string{"USER", "ADMIN"}, user.Roles)
		})
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	users.byID["u-1"] = &domain.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}
	roles := newFakeRoleRepo()
	roles.listByUID["u-1"] = []*domain.Role{{ID: "role-user", Name: "USER"}}
	svc := newTestUserService(users, roles, nil)

	got, err := svc.GetProfile(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, []string{"USER"}, got.Roles)

	_, err = svc.GetProfile(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	name := func(s string) *string { return &s }

	tests := []struct {
		name      string
		id        string
		update    domain.ProfileUpdate
		updateErr error
		wantErr   error
		wantAny   bool
		wantName  string
	}{
		{name: "success", id: "u-1", update: domain.ProfileUpdate{Name: name("  Jane Doe ")}, wantName: "Jane Doe"},
		{name: "empty update", id: "u-1", update: domain.ProfileUpdate{}, wantErr: domain.ErrEmptyUpdate},
		{name: "blank name", id: "u-1", update: domain.ProfileUpdate{Name: name("  ")}, wantErr: domain.ErrInvalidInput},
		{name: "not found", id: "missing", update: domain.ProfileUpdate{Name: name("X")}, wantErr: domain.ErrUserNotFound},
		{name: "repository error", id: "u-1", update: domain.ProfileUpdate{Name: name("X")}, updateErr: errors.New("db down"), wantAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			users.byID["u-1"] = &domain.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}
			users.updateErr = tt.updateErr
			svc := newTestUserService(users, newFakeRoleRepo(), nil)

			got, err := svc.UpdateProfile(ctx, tt.id, tt.update)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAny {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantName, users.byID["u-1"].Name)
		})
	}
}
