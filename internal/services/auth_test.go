package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func TestAuthService_IssueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		tokenErr  error
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid credentials",
			username:  "admin",
			password:  "password",
			user:      admin,
			wantToken: "signed-token",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "password",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			user:     admin,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "admin",
			password:  "password",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "token error",
			username: "admin",
			password: "password",
			user:     admin,
			tokenErr: errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == "password" {
				mockTokens.EXPECT().
					Generate(gomock.Any(), tt.user.Username, models.RoleAdmin).
					Return(tt.wantToken, tt.tokenErr)
			}

			token, err := svc.IssueToken(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_EnsureUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens)

	t.Run("stores bcrypt hash", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "user", gomock.Any(), models.RoleUser).
			DoAndReturn(func(_ context.Context, _, passwordHash, _ string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("password")))
				return nil
			})

		assert.NoError(t, svc.EnsureUser(context.Background(), "user", "password", models.RoleUser))
	})

	t.Run("unknown role", func(t *testing.T) {
		err := svc.EnsureUser(context.Background(), "user", "password", "Root")
		assert.ErrorIs(t, err, services.ErrInvalidRole)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "admin", gomock.Any(), models.RoleAdmin).
			Return(errors.New("save error"))

		err := svc.EnsureUser(context.Background(), "admin", "password", models.RoleAdmin)
		assert.EqualError(t, err, "save error")
	})
}
