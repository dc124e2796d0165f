package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/myprintpt/catalog-api/infrastructure/repository/mocks"
	"github.com/myprintpt/catalog-api/internal/config"
	"github.com/myprintpt/catalog-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			TokenTTLHours: 1,
		},
	}
}

func hashDe(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "cria o utilizador inativo com a senha cifrada",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "Ana.Silva@myprint.pt",
				PasswordHash: "Segredo#123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana.silva@myprint.pt").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
					func(u *domain.User) (*domain.User, error) {
						assert.Equal(t, "ana.silva@myprint.pt", u.Email)
						assert.False(t, u.Active)
						assert.Equal(t, 2, u.RoleID)
						assert.NoError(t, bcrypt.CompareHashAndPassword(
							[]byte(u.PasswordHash), []byte("Segredo#123")))
						u.ID = 7
						return u, nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 7, user.ID)
			},
		},
		{
			name: "email já registado devolve erro",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "Silva",
				Email:        "ana.silva@myprint.pt",
				PasswordHash: "Segredo#123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana.silva@myprint.pt").
					Return(&domain.User{ID: 1, Email: "ana.silva@myprint.pt"}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
		{
			name: "campos obrigatórios ausentes devolvem erro",
			user: &domain.User{
				Name:  "Ana",
				Email: "ana.silva@myprint.pt",
			},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())
			user, err := service.CreateUser(tt.user)
			tt.validate(t, user, err)
		})
	}
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "login com credenciais válidas devolve um token",
			email:    "Admin@myprint.pt",
			password: "Myprint#2024",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("admin@myprint.pt").Return(&domain.User{
					ID:           1,
					Name:         "Admin",
					Email:        "admin@myprint.pt",
					PasswordHash: hashDe(t, "Myprint#2024"),
					Active:       true,
					RoleID:       1,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "conta desativada não entra",
			email:    "ana.silva@myprint.pt",
			password: "Segredo#123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana.silva@myprint.pt").Return(&domain.User{
					ID:           2,
					Email:        "ana.silva@myprint.pt",
					PasswordHash: hashDe(t, "Segredo#123"),
					Active:       false,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "senha errada devolve credenciais inválidas",
			email:    "admin@myprint.pt",
			password: "outra-senha",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("admin@myprint.pt").Return(&domain.User{
					ID:           1,
					Email:        "admin@myprint.pt",
					PasswordHash: hashDe(t, "Myprint#2024"),
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "utilizador inexistente devolve não encontrado",
			email:    "ninguem@myprint.pt",
			password: "Segredo#123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@myprint.pt").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "email vazio é rejeitado",
			email:    "",
			password: "Segredo#123",
			setup:    func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	t.Run("token emitido pelo login é válido", func(t *testing.T) {
		userRepo.EXPECT().GetUserByEmail("admin@myprint.pt").Return(&domain.User{
			ID:           1,
			Name:         "Admin",
			Lastname:     "MYPRINT",
			Email:        "admin@myprint.pt",
			PasswordHash: hashDe(t, "Myprint#2024"),
			Active:       true,
			RoleID:       1,
		}, nil)

		service := NewService(userRepo, testConfig())

		token, err := service.LoginUser("admin@myprint.pt", "Myprint#2024")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "admin@myprint.pt", claims.UserEmail)
		assert.Equal(t, 1, claims.UserRoleID)
	})

	t.Run("token adulterado é rejeitado", func(t *testing.T) {
		service := NewService(userRepo, testConfig())

		claims, err := service.ValidateToken("nem.sequer.um-jwt")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		userRepo.EXPECT().GetUserByEmail("admin@myprint.pt").Return(&domain.User{
			ID:           1,
			Email:        "admin@myprint.pt",
			PasswordHash: hashDe(t, "Myprint#2024"),
			Active:       true,
		}, nil)

		emissor := NewService(userRepo, testConfig())
		token, err := emissor.LoginUser("admin@myprint.pt", "Myprint#2024")
		assert.NoError(t, err)

		outroCfg := testConfig()
		outroCfg.Auth.Secret = "outro-segredo"
		validador := NewService(userRepo, outroCfg)

		claims, err := validador.ValidateToken(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	t.Run("gera uma senha forte e grava o novo hash", func(t *testing.T) {
		userRepo.EXPECT().GetUserByEmail("ana.silva@myprint.pt").Return(&domain.User{
			ID:           2,
			Email:        "ana.silva@myprint.pt",
			PasswordHash: "hash-antigo",
			Active:       true,
		}, nil)

		var hashGravado string
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(
			func(u *domain.User) error {
				hashGravado = u.PasswordHash
				return nil
			})

		newPassword, err := service.ResetPassword("ana.silva@myprint.pt")

		assert.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(newPassword))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashGravado), []byte(newPassword)))
	})

	t.Run("utilizador inexistente devolve não encontrado", func(t *testing.T) {
		userRepo.EXPECT().GetUserByEmail("ninguem@myprint.pt").Return(nil, nil)

		newPassword, err := service.ResetPassword("ninguem@myprint.pt")

		assert.Empty(t, newPassword)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("altera a senha quando a atual confere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{
			ID:           2,
			PasswordHash: hashDe(t, "Antiga#123"),
			Active:       true,
		}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(
			func(u *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(u.PasswordHash), []byte("Nova#Senha9")))
				return nil
			})

		service := NewService(userRepo, testConfig())
		assert.NoError(t, service.ChangePassword(2, "Antiga#123", "Nova#Senha9"))
	})

	t.Run("senha atual errada é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{
			ID:           2,
			PasswordHash: hashDe(t, "Antiga#123"),
			Active:       true,
		}, nil)

		service := NewService(userRepo, testConfig())
		err := service.ChangePassword(2, "errada", "Nova#Senha9")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("nova senha fraca é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{
			ID:           2,
			PasswordHash: hashDe(t, "Antiga#123"),
			Active:       true,
		}, nil)

		service := NewService(userRepo, testConfig())
		err := service.ChangePassword(2, "Antiga#123", "fraca")

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := NewService(nil, testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha forte passa", password: "Myprint#2024", wantErr: false},
		{name: "curta demais", password: "Ab#1", wantErr: true},
		{name: "sem maiúsculas", password: "myprint#2024", wantErr: true},
		{name: "sem minúsculas", password: "MYPRINT#2024", wantErr: true},
		{name: "sem números", password: "Myprint#abcd", wantErr: true},
		{name: "sem caracteres especiais", password: "Myprint2024a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	service := &Service{}

	for i := 0; i < 10; i++ {
		password, err := generateStrongPassword(12)

		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	}
}
