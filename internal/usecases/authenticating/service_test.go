package authenticating

import (
	"testing"

	"github.com/marvelhub/marvel-hub-api/infrastructure/repository/mocks"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{Auth: config.Auth{Secret: "test-secret"}}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newAuthenticator(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte", password: "Str0ng!Pass", valid: true},
		{name: "Curta demais", password: "S3nh@a", valid: false},
		{name: "Sem maiúscula", password: "fraca123!", valid: false},
		{name: "Sem minúscula", password: "FORTE123!", valid: false},
		{name: "Sem número", password: "SenhaForte!", valid: false},
		{name: "Sem caractere especial", password: "SenhaForte123", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		service, _ := newAuthenticator(t)

		_, err := service.CreateUser(&domain.User{Email: "a@b.c", Name: "Tony"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByEmail("tony@stark.io").
			Return(&domain.User{ID: 1, Email: "tony@stark.io"}, nil)

		_, err := service.CreateUser(&domain.User{
			Email:        "Tony@Stark.io",
			Name:         "Tony",
			Lastname:     "Stark",
			PasswordHash: "Str0ng!Pass",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Senha fraca é rejeitada", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("tony@stark.io").Return(nil, nil)

		_, err := service.CreateUser(&domain.User{
			Email:        "tony@stark.io",
			Name:         "Tony",
			Lastname:     "Stark",
			PasswordHash: "fraca",
		})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Novo usuário entra inativo com papel de membro", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("tony@stark.io").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "tony@stark.io", user.Email)
				assert.Equal(t, 2, user.RoleID)
				assert.False(t, user.Active)

				// A senha nunca é persistida em claro
				assert.NotEqual(t, "Str0ng!Pass", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!Pass")))

				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Email:        " Tony@Stark.io ",
			Name:         "Tony",
			Lastname:     "Stark",
			PasswordHash: "Str0ng!Pass",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, user.RoleID)
	})
}

func TestLoginUser(t *testing.T) {
	t.Run("Credenciais ausentes", func(t *testing.T) {
		service, _ := newAuthenticator(t)

		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ghost@shield.io").Return(nil, nil)

		_, err := service.LoginUser("ghost@shield.io", "qualquer")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByEmail("tony@stark.io").
			Return(&domain.User{ID: 1, Email: "tony@stark.io", Active: false}, nil)

		_, err := service.LoginUser("tony@stark.io", "qualquer")

		assert.ErrorIs(t, err, ErrUserDisabled)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, 1, authErr.UserID)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByEmail("tony@stark.io").
			Return(&domain.User{
				ID:           1,
				Email:        "tony@stark.io",
				Active:       true,
				PasswordHash: hashPassword(t, "Str0ng!Pass"),
			}, nil)

		_, err := service.LoginUser("tony@stark.io", "errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Login válido emite token com as claims do usuário", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByEmail("tony@stark.io").
			Return(&domain.User{
				ID:           1,
				Name:         "Tony",
				Lastname:     "Stark",
				Email:        "tony@stark.io",
				Active:       true,
				RoleID:       1,
				PasswordHash: hashPassword(t, "Str0ng!Pass"),
			}, nil)

		token, err := service.LoginUser("Tony@Stark.io", "Str0ng!Pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)

		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "Tony", claims.UserName)
		assert.Equal(t, 1, claims.UserRoleID)
	})
}

func TestValidateToken(t *testing.T) {
	service, _ := newAuthenticator(t)

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		other, userRepo := func() (Authenticator, *mocks.MockUserRepository) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)
			repo := mocks.NewMockUserRepository(ctrl)
			cfg := &config.Config{Auth: config.Auth{Secret: "outro-segredo"}}
			return NewService(repo, cfg), repo
		}()

		userRepo.EXPECT().
			GetUserByEmail("tony@stark.io").
			Return(&domain.User{
				ID:           1,
				Email:        "tony@stark.io",
				Active:       true,
				PasswordHash: hashPassword(t, "Str0ng!Pass"),
			}, nil)

		token, err := other.LoginUser("tony@stark.io", "Str0ng!Pass")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	t.Run("Somente administradores podem redefinir senhas", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, RoleID: 2}, nil)

		_, err := service.GenerateStrongPassword(5, 9)

		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Administrador redefine e a nova senha passa na validação", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		target := &domain.User{ID: 9, RoleID: 2, PasswordHash: "antiga"}

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(9).Return(target, nil)
		userRepo.EXPECT().UpdateUser(target).Return(nil)

		password, err := service.GenerateStrongPassword(1, 9)

		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(password)))
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Atual!123")}, nil)

		err := service.ChangePassword(1, "errada", "Nova!Senha1")

		assert.EqualError(t, err, "senha atual incorreta")
	})

	t.Run("Nova senha fraca é rejeitada", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Atual!123")}, nil)

		err := service.ChangePassword(1, "Atual!123", "fraca")

		assert.ErrorContains(t, err, "a senha deve conter")
	})

	t.Run("Troca válida persiste o novo hash", func(t *testing.T) {
		service, userRepo := newAuthenticator(t)

		user := &domain.User{ID: 1, PasswordHash: hashPassword(t, "Atual!123")}

		userRepo.EXPECT().GetUserByID(1).Return(user, nil)
		userRepo.EXPECT().UpdateUser(user).Return(nil)

		err := service.ChangePassword(1, "Atual!123", "Nova!Senha1")

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova!Senha1")))
	})
}
