package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/utils"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type IUserUsecase interface {
	Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (*model.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
	Logout(ctx context.Context, userID bson.ObjectID) error
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.UpdateAccountRequest) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID bson.ObjectID, avatarPath string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, userID bson.ObjectID, coverPath string) (*model.User, error)
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error)
	GetChannelProfile(ctx context.Context, username string, viewerID bson.ObjectID) (*dto.ChannelProfile, error)
}

type UserUsecase struct {
	userRepo repository.IUser
	media    repository.IMediaStorage
	auth     configuration.Auth
}

func NewUserUsecase(userRepo repository.IUser, media repository.IMediaStorage, auth configuration.Auth) IUserUsecase {
	return &UserUsecase{userRepo: userRepo, media: media, auth: auth}
}

// Register validates the form, claims the identity, stores the avatar (and
// optional cover image) on the media host, and persists the account with a
// hashed password.
func (u *UserUsecase) Register(ctx context.Context, req dto.RegisterRequest, avatarPath, coverPath string) (*model.User, error) {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"fullName", req.FullName},
		{"password", req.Password},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.BadRequest("all fields are required", missing...)
	}
	if avatarPath == "" {
		return nil, apperror.BadRequest("avatar is required")
	}

	existing, err := u.userRepo.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("username or email already exists")
	}

	avatar, err := u.media.Upload(ctx, avatarPath)
	if err != nil || avatar == nil {
		logger.GetLogger().WithField("error", err).Error("avatar upload failed")
		return nil, apperror.Internal("failed to upload avatar")
	}
	coverURL := ""
	if coverPath != "" {
		// a failed cover upload degrades to no cover image
		if cover, err := u.media.Upload(ctx, coverPath); err == nil && cover != nil {
			coverURL = cover.URL
		}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   strings.ToLower(strings.TrimSpace(req.Username)),
		Email:      strings.TrimSpace(req.Email),
		FullName:   strings.TrimSpace(req.FullName),
		Avatar:     avatar.URL,
		CoverImage: coverURL,
		Password:   hashed,
	}
	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("username or email already exists")
		}
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a fresh token pair. The persisted
// refresh token is replaced, invalidating any previously issued one.
func (u *UserUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	if req.Username == "" && req.Email == "" {
		return nil, apperror.BadRequest("username or email is required")
	}
	user, err := u.userRepo.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, orNotFound(err, "user")
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	pair, err := u.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (u *UserUsecase) Logout(ctx context.Context, userID bson.ObjectID) error {
	return u.userRepo.ClearRefreshToken(ctx, userID)
}

// Refresh rotates the token pair. The incoming token must verify against the
// refresh secret and match the single stored token for its subject; a token
// rotated out earlier is rejected.
func (u *UserUsecase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("unauthorized request")
	}

	var claims model.RefreshClaims
	token, err := jwt.ParseWithClaims(refreshToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.auth.RefreshTokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		return nil, err
	}
	if user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("refresh token is expired or used")
	}

	return u.issueTokenPair(ctx, user)
}

func (u *UserUsecase) ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ChangePasswordRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return apperror.BadRequest("old and new passwords are required")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return orNotFound(err, "user")
	}
	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return apperror.Unauthorized("invalid old password")
	}
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, hashed)
}

func (u *UserUsecase) UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.UpdateAccountRequest) (*model.User, error) {
	if req.FullName == "" || req.Email == "" {
		return nil, apperror.BadRequest("fullName and email are required")
	}
	user, err := u.userRepo.UpdateAccount(ctx, userID, req.FullName, req.Email)
	if err != nil {
		return nil, orNotFound(err, "user")
	}
	return user, nil
}

func (u *UserUsecase) UpdateAvatar(ctx context.Context, userID bson.ObjectID, avatarPath string) (*model.User, error) {
	if avatarPath == "" {
		return nil, apperror.BadRequest("avatar file is missing")
	}
	avatar, err := u.media.Upload(ctx, avatarPath)
	if err != nil || avatar == nil {
		logger.GetLogger().WithField("error", err).Error("avatar upload failed")
		return nil, apperror.Internal("failed to upload avatar")
	}
	user, err := u.userRepo.UpdateAvatar(ctx, userID, avatar.URL)
	if err != nil {
		return nil, orNotFound(err, "user")
	}
	return user, nil
}

func (u *UserUsecase) UpdateCoverImage(ctx context.Context, userID bson.ObjectID, coverPath string) (*model.User, error) {
	if coverPath == "" {
		return nil, apperror.BadRequest("cover image file is missing")
	}
	cover, err := u.media.Upload(ctx, coverPath)
	if err != nil || cover == nil {
		logger.GetLogger().WithField("error", err).Error("cover image upload failed")
		return nil, apperror.Internal("failed to upload cover image")
	}
	user, err := u.userRepo.UpdateCoverImage(ctx, userID, cover.URL)
	if err != nil {
		return nil, orNotFound(err, "user")
	}
	return user, nil
}

func (u *UserUsecase) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]dto.VideoWithOwner, error) {
	history, err := u.userRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, "user")
	}
	return history, nil
}

func (u *UserUsecase) GetChannelProfile(ctx context.Context, username string, viewerID bson.ObjectID) (*dto.ChannelProfile, error) {
	if username == "" {
		return nil, apperror.BadRequest("username is required")
	}
	profile, err := u.userRepo.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		return nil, orNotFound(err, "channel")
	}
	return profile, nil
}

// issueTokenPair signs a fresh access+refresh pair and persists the refresh
// token, enforcing the single-active-refresh-token policy.
func (u *UserUsecase) issueTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	now := utils.GetCurrentTime()

	accessClaims := model.UserClaims{
		UserID:   user.ID.Hex(),
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(u.auth.AccessTokenTTLMin) * time.Minute).Unix(),
		},
	}
	accessToken, err := utils.GenerateToken(accessClaims, u.auth.AccessTokenSecret)
	if err != nil {
		return nil, apperror.Internal("failed to issue tokens")
	}

	// the jti keeps successive refresh tokens distinct even when issued
	// within the same second, so rotation always replaces the stored value
	refreshClaims := model.RefreshClaims{
		UserID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(u.auth.RefreshTokenTTLDay) * 24 * time.Hour).Unix(),
		},
	}
	refreshToken, err := utils.GenerateToken(refreshClaims, u.auth.RefreshTokenSecret)
	if err != nil {
		return nil, apperror.Internal("failed to issue tokens")
	}

	if err := u.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
