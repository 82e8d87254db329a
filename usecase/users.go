package usecase

import (
	"context"
	"strings"
	"time"

	"notewell/model"
	"notewell/repository"
	"notewell/services"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersService struct {
	UsersRepo *repository.UsersRepo
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name        *string
	Bio         *string
	Avatar      *string
	Preferences *model.UserPreferences
}

// Register creates an account. Email uniqueness is case-insensitive;
// the unique index is the backstop behind the pre-check.
func (svc *UsersService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" {
		return nil, utils.ValidationError("name is required")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, utils.ValidationError("a valid email is required")
	}
	if !utils.ValidatePassword(input.Password) {
		return nil, utils.ValidationError("password must be at least 8 characters with a number and a special character")
	}

	existing, err := svc.UsersRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, utils.InternalErrorf("failed to check email", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("an account with that email already exists")
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		return nil, utils.InternalErrorf("failed to hash password", err)
	}

	now := time.Now()
	user := &model.User{
		UserID:      utils.GenerateID(),
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashed,
		Preferences: model.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("an account with that email already exists")
		}
		return nil, utils.InternalErrorf("failed to create account", err)
	}
	return user, nil
}

// Authenticate verifies credentials and returns the account.
func (svc *UsersService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, utils.InternalErrorf("failed to look up account", err)
	}
	if user == nil || !services.VerifyPassword(password, user.Password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, utils.ForbiddenError("invalid email or password")
	}
	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

func (svc *UsersService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to fetch profile", err)
	}
	if user == nil {
		return nil, utils.NotFoundError("user not found")
	}
	return user, nil
}

func (svc *UsersService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error) {
	fields := bson.M{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, utils.ValidationError("name is required")
		}
		fields["name"] = name
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.Avatar != nil {
		fields["avatar"] = *input.Avatar
	}
	if input.Preferences != nil {
		prefs := *input.Preferences
		if prefs.PageSize < 1 {
			prefs.PageSize = repository.DefaultPageSize
		}
		if prefs.DefaultContentType != "" && !prefs.DefaultContentType.Valid() {
			return nil, utils.ValidationError("invalid default content type")
		}
		if !utils.ValidHexColor(prefs.DefaultNoteColor) {
			return nil, utils.ValidationError("default note color must be a hex string")
		}
		fields["preferences"] = prefs
	}
	if len(fields) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}

	err := svc.UsersRepo.UpdateUser(ctx, userID, fields)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("user not found")
		}
		return nil, utils.InternalErrorf("failed to update profile", err)
	}
	return svc.GetProfile(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash.
func (svc *UsersService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := svc.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !services.VerifyPassword(current, user.Password) {
		return utils.ForbiddenError("current password is incorrect")
	}
	if !utils.ValidatePassword(next) {
		return utils.ValidationError("password must be at least 8 characters with a number and a special character")
	}

	hashed, err := services.HashPassword(next)
	if err != nil {
		return utils.InternalErrorf("failed to hash password", err)
	}
	if err := svc.UsersRepo.UpdateUser(ctx, userID, bson.M{"password": hashed}); err != nil {
		return utils.InternalErrorf("failed to change password", err)
	}
	return nil
}

// ChangeEmail moves the account to a new unique email address.
func (svc *UsersService) ChangeEmail(ctx context.Context, userID, password, newEmail string) error {
	user, err := svc.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !services.VerifyPassword(password, user.Password) {
		return utils.ForbiddenError("password is incorrect")
	}

	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" || !strings.Contains(newEmail, "@") {
		return utils.ValidationError("a valid email is required")
	}

	existing, err := svc.UsersRepo.FindUserByEmail(ctx, newEmail)
	if err != nil {
		return utils.InternalErrorf("failed to check email", err)
	}
	if existing != nil && existing.UserID != userID {
		return utils.ConflictError("an account with that email already exists")
	}

	if err := svc.UsersRepo.UpdateUser(ctx, userID, bson.M{"email": newEmail}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("an account with that email already exists")
		}
		return utils.InternalErrorf("failed to change email", err)
	}
	return nil
}

func (svc *UsersService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := svc.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !services.VerifyPassword(password, user.Password) {
		return utils.ForbiddenError("password is incorrect")
	}
	if err := svc.UsersRepo.DeleteUser(ctx, userID); err != nil {
		return utils.InternalErrorf("failed to delete account", err)
	}
	return nil
}
