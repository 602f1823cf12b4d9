// service/auth_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/config"
	"github.com/meridianhealth/clinicgate/dao"
	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/session"
	"github.com/meridianhealth/clinicgate/util"
)

func newAuthService(t *testing.T) (service.IAuthService, audit.Service, session.Store) {
	t.Helper()
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	userDAO := dao.NewUserDAO(dao.SeedUsers(), auditService)
	sessions := session.NewMemoryStore()
	authService := service.NewAuthService(
		userDAO,
		sessions,
		auditService,
		util.NewNotificationService(),
		util.NewEventBus(),
	)
	return authService, auditService, sessions
}

func sessionIDFromToken(t *testing.T, token string) string {
	t.Helper()
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(viper.GetString("auth.jwtSecret")), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims.Id
}

func TestLogin(t *testing.T) {
	authService, auditService, _ := newAuthService(t)
	ctx := context.Background()

	t.Run("UnknownEmailFailsRegardlessOfPassword", func(t *testing.T) {
		_, err := authService.Login(ctx, "nobody@secure.med", "anything", "203.0.113.50")
		assert.ErrorIs(t, err, clinic_errors.ErrInvalidCredentials)

		logs, err := auditService.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, logs)
		assert.Equal(t, audit.ActionLoginFailure, logs[0].Action)
		assert.Contains(t, logs[0].Details, "nobody@secure.med")
	})

	t.Run("KnownEmailSucceedsWithAnyPassword", func(t *testing.T) {
		result, err := authService.Login(ctx, "doctor@secure.med", "not-the-real-password", "10.0.5.25")
		require.NoError(t, err)
		assert.False(t, result.MFARequired)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.User)
		assert.Equal(t, model.RoleDoctor, result.User.Role)
	})

	t.Run("AdminAlwaysRequiresSecondFactor", func(t *testing.T) {
		result, err := authService.Login(ctx, "admin@secure.med", "pw", "192.168.1.10")
		require.NoError(t, err)
		assert.True(t, result.MFARequired)
		assert.NotEmpty(t, result.PendingToken)
		assert.Empty(t, result.Token)
		assert.Nil(t, result.User)
	})
}

func TestVerifySecondFactor(t *testing.T) {
	authService, _, _ := newAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "admin@secure.med", "pw", "192.168.1.10")
	require.NoError(t, err)
	require.True(t, login.MFARequired)

	t.Run("WrongCodeLeavesPendingIntact", func(t *testing.T) {
		_, err := authService.VerifySecondFactor(ctx, login.PendingToken, "00000", "192.168.1.10")
		assert.ErrorIs(t, err, clinic_errors.ErrInvalidCode)

		// The pending record survives a failed attempt, so a retry with the
		// correct code still succeeds.
		result, err := authService.VerifySecondFactor(ctx, login.PendingToken, "72184", "192.168.1.10")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.User)
		assert.Equal(t, model.RoleAdmin, result.User.Role)
	})

	t.Run("PendingIsConsumedOnSuccess", func(t *testing.T) {
		_, err := authService.VerifySecondFactor(ctx, login.PendingToken, "72184", "192.168.1.10")
		assert.ErrorIs(t, err, clinic_errors.ErrPendingNotFound)
	})

	t.Run("UnknownPendingToken", func(t *testing.T) {
		_, err := authService.VerifySecondFactor(ctx, "no-such-token", "72184", "192.168.1.10")
		assert.ErrorIs(t, err, clinic_errors.ErrPendingNotFound)
	})
}

func TestSessionLifecycle(t *testing.T) {
	authService, auditService, _ := newAuthService(t)
	ctx := context.Background()

	login, err := authService.Login(ctx, "nurse.jones@secure.med", "pw", "10.0.5.28")
	require.NoError(t, err)
	sessionID := sessionIDFromToken(t, login.Token)

	t.Run("CurrentUserResolvesSession", func(t *testing.T) {
		user, err := authService.CurrentUser(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "nurse.jones@secure.med", user.Email)
	})

	t.Run("LogoutDeletesSession", func(t *testing.T) {
		require.NoError(t, authService.Logout(ctx, sessionID, "10.0.5.28"))

		_, err := authService.CurrentUser(ctx, sessionID)
		assert.ErrorIs(t, err, clinic_errors.ErrSessionNotFound)

		logs, err := auditService.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, logs)
		assert.Equal(t, audit.ActionLogout, logs[0].Action)
	})

	t.Run("LogoutTwiceFails", func(t *testing.T) {
		err := authService.Logout(ctx, sessionID, "10.0.5.28")
		assert.ErrorIs(t, err, clinic_errors.ErrSessionNotFound)
	})
}

func TestLoginPublishesEvent(t *testing.T) {
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	userDAO := dao.NewUserDAO(dao.SeedUsers(), auditService)
	eventBus := util.NewEventBus()

	received := make(chan model.User, 1)
	eventBus.Subscribe(util.EventLogin, func(ctx context.Context, event util.Event) error {
		received <- event.Payload.(model.User)
		return nil
	})

	authService := service.NewAuthService(
		userDAO,
		session.NewMemoryStore(),
		auditService,
		util.NewNotificationService(),
		eventBus,
	)

	_, err := authService.Login(context.Background(), "doctor@secure.med", "pw", "10.0.5.25")
	require.NoError(t, err)

	select {
	case user := <-received:
		assert.Equal(t, "doctor@secure.med", user.Email)
	case <-time.After(time.Second):
		t.Fatal("no login event published")
	}
}

func TestPasswordReset(t *testing.T) {
	authService, _, _ := newAuthService(t)
	ctx := context.Background()

	t.Run("RequestReportsWhetherEmailExists", func(t *testing.T) {
		known, err := authService.RequestPasswordReset(ctx, "analyst@secure.med")
		require.NoError(t, err)
		assert.True(t, known)

		known, err = authService.RequestPasswordReset(ctx, "nobody@secure.med")
		require.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("ResetRejectsUnknownEmail", func(t *testing.T) {
		assert.NoError(t, authService.ResetPassword(ctx, "analyst@secure.med"))
		assert.ErrorIs(t, authService.ResetPassword(ctx, "nobody@secure.med"), clinic_errors.ErrUserNotFound)
	})
}
