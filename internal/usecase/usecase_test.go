package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-creators-backend/internal/domain"
	"go-creators-backend/internal/usecase"
	"go-creators-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockCreatorRepo struct {
	mock.Mock
}

func (m *MockCreatorRepo) Create(ctx context.Context, creator *domain.Creator) error {
	return m.Called(ctx, creator).Error(0)
}

func (m *MockCreatorRepo) GetByID(ctx context.Context, id int64) (*domain.Creator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creator), args.Error(1)
}

func (m *MockCreatorRepo) GetByEmail(ctx context.Context, email string) (*domain.Creator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Creator), args.Error(1)
}

func (m *MockCreatorRepo) UpdateFields(ctx context.Context, id int64, fields map[string]string) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockCreatorRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListNames(ctx context.Context, creatorID int64) ([]string, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSkillRepo) Replace(ctx context.Context, creatorID int64, names []string) error {
	return m.Called(ctx, creatorID, names).Error(0)
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func registerInput() *domain.RegisterInput {
	return &domain.RegisterInput{
		Name:     "Ana",
		Phone:    "111",
		Email:    "a@x.com",
		Password: "hunter2",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should hash the password and default the icon", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		var stored *domain.Creator
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Creator")).Return(nil).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Creator)
		})

		err := uc.Register(ctx, registerInput())
		assert.NoError(t, err)
		assert.NotNil(t, stored)
		assert.NotEqual(t, "hunter2", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
		assert.Equal(t, domain.DefaultIcon, stored.Icon)
	})

	t.Run("Should keep a supplied icon", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		input := registerInput()
		input.Icon = "dog_icon.png"

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Creator")).Return(nil).Run(func(args mock.Arguments) {
			assert.Equal(t, "dog_icon.png", args.Get(1).(*domain.Creator).Icon)
		})

		assert.NoError(t, uc.Register(ctx, input))
	})

	t.Run("Should surface a duplicate email as Conflict", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Creator")).Return(apperror.Conflict("email already registered"))

		err := uc.Register(ctx, registerInput())
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		assert.Contains(t, err.Error(), "email already registered")
	})

	t.Run("Should reject an invalid payload before touching storage", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)

		input := registerInput()
		input.Email = "not-an-email"

		err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), 10)
	assert.NoError(t, err)
	ana := &domain.Creator{ID: 7, Name: "Ana", Email: "a@x.com", PasswordHash: string(hash)}

	t.Run("Should return id and name on a correct password", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)
		mockRepo.On("GetByEmail", ctx, "a@x.com").Return(ana, nil)

		result, err := uc.Login(ctx, "a@x.com", "hunter2")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "Ana", result.Name)
	})

	t.Run("Should be Unauthorized on a wrong password", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)
		mockRepo.On("GetByEmail", ctx, "a@x.com").Return(ana, nil)

		_, err := uc.Login(ctx, "a@x.com", "wrong")
		assert.Error(t, err)
		assert.Equal(t, 401, appCode(t, err))
	})

	t.Run("Should be NotFound for an unknown email", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)
		mockRepo.On("GetByEmail", ctx, "ghost@x.com").Return(nil, nil)

		_, err := uc.Login(ctx, "ghost@x.com", "hunter2")
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
	})

	t.Run("Should be Internal when the stored hash is malformed", func(t *testing.T) {
		mockRepo := new(MockCreatorRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validate)
		broken := &domain.Creator{ID: 8, Name: "Bo", Email: "b@x.com", PasswordHash: "not-a-bcrypt-hash"}
		mockRepo.On("GetByEmail", ctx, "b@x.com").Return(broken, nil)

		_, err := uc.Login(ctx, "b@x.com", "hunter2")
		assert.Error(t, err)
		assert.Equal(t, 500, appCode(t, err))
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	ana := &domain.Creator{ID: 7, Name: "Ana", Phone: "111", Email: "a@x.com", Icon: domain.DefaultIcon}

	t.Run("Should merge creator fields with skill names", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, mockSkills)

		mockCreators.On("GetByID", ctx, int64(7)).Return(ana, nil)
		mockSkills.On("ListNames", ctx, int64(7)).Return([]string{"python", "design"}, nil)

		profile, err := uc.GetProfile(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Ana", profile.Name)
		assert.Equal(t, domain.DefaultIcon, profile.Icon)
		assert.Equal(t, []string{"python", "design"}, profile.Skills)
	})

	t.Run("Should return an empty skills list, never nil", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, mockSkills)

		mockCreators.On("GetByID", ctx, int64(7)).Return(ana, nil)
		mockSkills.On("ListNames", ctx, int64(7)).Return(nil, nil)

		profile, err := uc.GetProfile(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, profile.Skills)
		assert.Empty(t, profile.Skills)
	})

	t.Run("Should be NotFound for an unknown id", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, mockSkills)

		mockCreators.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.GetProfile(ctx, 99)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
		mockSkills.AssertNotCalled(t, "ListNames", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an empty field set before touching storage", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, new(MockSkillRepo))

		err := uc.UpdateProfile(ctx, 7, map[string]string{})
		assert.Error(t, err)
		assert.Equal(t, 400, appCode(t, err))
		mockCreators.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pass supplied fields through", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, new(MockSkillRepo))

		fields := map[string]string{"city": "Lisbon", "about": "hi"}
		mockCreators.On("UpdateFields", ctx, int64(7), fields).Return(nil)

		assert.NoError(t, uc.UpdateProfile(ctx, 7, fields))
		mockCreators.AssertExpectations(t)
	})
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be NotFound and mutate nothing for an unknown id", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, new(MockSkillRepo))

		mockCreators.On("GetByID", ctx, int64(99)).Return(nil, nil)

		err := uc.DeleteProfile(ctx, 99)
		assert.Error(t, err)
		assert.Equal(t, 404, appCode(t, err))
		mockCreators.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete an existing creator", func(t *testing.T) {
		mockCreators := new(MockCreatorRepo)
		uc := usecase.NewCreatorUsecase(mockCreators, new(MockSkillRepo))

		mockCreators.On("GetByID", ctx, int64(7)).Return(&domain.Creator{ID: 7}, nil)
		mockCreators.On("Delete", ctx, int64(7)).Return(nil)

		assert.NoError(t, uc.DeleteProfile(ctx, 7))
		mockCreators.AssertExpectations(t)
	})
}

func TestSkills(t *testing.T) {
	ctx := context.Background()

	t.Run("Replace should pass the exact input list through", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		names := []string{"go", "rust"}
		mockSkills.On("Replace", ctx, int64(7), names).Return(nil)

		assert.NoError(t, uc.Replace(ctx, 7, names))
		mockSkills.AssertExpectations(t)
	})

	t.Run("Replace should treat nil as an empty list", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		mockSkills.On("Replace", ctx, int64(7), []string{}).Return(nil)

		assert.NoError(t, uc.Replace(ctx, 7, nil))
		mockSkills.AssertExpectations(t)
	})

	t.Run("List should never return nil", func(t *testing.T) {
		mockSkills := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(mockSkills)

		mockSkills.On("ListNames", ctx, int64(7)).Return(nil, nil)

		names, err := uc.List(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})
}
