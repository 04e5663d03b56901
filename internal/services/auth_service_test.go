package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/repos"
	"nitrobrew/internal/services"
)

func newAuthFixture(t *testing.T) *services.AuthService {
	t.Helper()
	return services.NewAuthService(repos.NewUserRepo(memdb(t)), "test-secret", nil)
}

func TestDefaultRolePolicy(t *testing.T) {
	role, err := services.DefaultRolePolicy("jo@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, role)

	role, err = services.DefaultRolePolicy("barista@admin.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, role)

	_, err = services.DefaultRolePolicy("jo@example.org")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignupAssignsRoleAndHashesPassword(t *testing.T) {
	svc := newAuthFixture(t)

	u, err := svc.Signup("jo@gmail.com", "supersecret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.NotContains(t, u.Hash, "supersecret1")

	// duplicate email rejected
	_, err = svc.Signup("jo@gmail.com", "supersecret1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSignupHonorsInjectedPolicy(t *testing.T) {
	db := memdb(t)
	everyoneStaff := func(string) (string, error) { return domain.RoleStaff, nil }
	svc := services.NewAuthService(repos.NewUserRepo(db), "test-secret", everyoneStaff)

	u, err := svc.Signup("someone@anywhere.dev", "supersecret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, u.Role)
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.Signup("jo@gmail.com", "supersecret1")
	require.NoError(t, err)

	u, token, err := svc.Login("jo@gmail.com", "supersecret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, "jo@gmail.com", sess.Email)
	assert.Equal(t, domain.RoleCustomer, sess.Role)
	assert.False(t, sess.Guest)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.Signup("jo@gmail.com", "supersecret1")
	require.NoError(t, err)

	_, _, err = svc.Login("jo@gmail.com", "wrongpass99")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	_, _, err = svc.Login("nobody@gmail.com", "supersecret1")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	db := memdb(t)
	users := repos.NewUserRepo(db)
	issuer := services.NewAuthService(users, "secret-a", nil)
	verifier := services.NewAuthService(users, "secret-b", nil)

	u, err := issuer.Signup("jo@gmail.com", "supersecret1")
	require.NoError(t, err)
	token, err := issuer.IssueToken(u)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestUpdateName(t *testing.T) {
	svc := newAuthFixture(t)
	u, err := svc.Signup("jo@gmail.com", "supersecret1")
	require.NoError(t, err)

	updated, err := svc.UpdateName(u.ID, "Jo Brew")
	require.NoError(t, err)
	assert.Equal(t, "Jo Brew", updated.Name)

	_, err = svc.UpdateName("u-missing", "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
