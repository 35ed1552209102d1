package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestMFAEnrollActivate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	auth := &AuthService{Store: st, SigningKey: []byte("k"), Issuer: "test", SessionTTL: time.Hour}
	svc := &MFAService{Store: st, Issuer: "BarakahBot"}

	user, err := auth.Register(ctx, "ops@example.com", "Ops", "a fine password")
	require.NoError(t, err)

	uri, err := svc.Enroll(ctx, user.ID)
	require.NoError(t, err)
	require.Contains(t, uri, "otpauth://totp/")
	require.Contains(t, uri, "ops%40example.com")

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.MFASecret)
	require.Nil(t, stored.MFAEnabled, "enrollment alone must not enable mfa")

	t.Run("bad code rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.Activate(ctx, user.ID, "000000"), ErrInvalidTOTP)
	})

	code, err := totp.GenerateCode(*stored.MFASecret, time.Now())
	require.NoError(t, err)
	require.NoError(t, svc.Activate(ctx, user.ID, code))

	enabled, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, enabled.MFAEnabled)

	t.Run("login now demands a code", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "ops@example.com", "a fine password", "")
		require.ErrorIs(t, err, ErrMFARequired)

		_, _, err = auth.Login(ctx, "ops@example.com", "a fine password", "000000")
		require.ErrorIs(t, err, ErrInvalidTOTP)

		code, err := totp.GenerateCode(*enabled.MFASecret, time.Now())
		require.NoError(t, err)
		credential, _, err := auth.Login(ctx, "ops@example.com", "a fine password", code)
		require.NoError(t, err)
		require.NotEmpty(t, credential)
	})

	t.Run("deactivate revokes sessions", func(t *testing.T) {
		code, err := totp.GenerateCode(*enabled.MFASecret, time.Now())
		require.NoError(t, err)
		credential, _, err := auth.Login(ctx, "ops@example.com", "a fine password", code)
		require.NoError(t, err)

		require.NoError(t, svc.Deactivate(ctx, user.ID))

		_, err = auth.ResolveCredential(ctx, credential)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestMFAActivateWithoutEnroll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	auth := &AuthService{Store: st, SigningKey: []byte("k"), Issuer: "test"}
	svc := &MFAService{Store: st, Issuer: "BarakahBot"}

	user, err := auth.Register(ctx, "fresh@example.com", "Fresh", "a fine password")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Activate(ctx, user.ID, "123456"), ErrMFANotEnrolled)
}
