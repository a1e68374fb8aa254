package service

import (
	"fmt"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/util/crypto"
	"poseidon/web/entity"
)

// UserService provides business logic for managing panel accounts and for
// authenticating logins.
type UserService struct{}

func (s *UserService) GetUsers() ([]*model.User, error) {
	db := database.GetDB()
	var users []*model.User
	err := db.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	var user model.User
	err := db.First(&user, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find user with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the credentials-bearing record for a username.
func (s *UserService) FindByUsername(username string) (*model.User, error) {
	db := database.GetDB()
	var user model.User
	err := db.Where("username = ?", username).First(&user).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUser verifies a username/password pair against the store. Returns nil
// when the credentials do not match.
func (s *UserService) CheckUser(username, password string) *model.User {
	user, err := s.FindByUsername(username)
	if err != nil {
		return nil
	}
	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// CreateUser persists a new account. The username must be free, and the
// plaintext password is replaced with its bcrypt hash before the write.
func (s *UserService) CreateUser(user *model.User) error {
	db := database.GetDB()
	if _, err := s.FindByUsername(user.Username); err == nil {
		return fmt.Errorf("username %q is already taken: %w", user.Username, ErrConflict)
	}

	hash, err := crypto.HashPasswordAsBcrypt(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := db.Create(user).Error; err != nil {
		return err
	}
	logger.Infof("created user %q with role %q", user.Username, user.Role)
	return nil
}

// UpdateUser overwrites the account at id, hashing the new password.
func (s *UserService) UpdateUser(id int, user *model.User) error {
	db := database.GetDB()
	if _, err := s.GetUser(id); err != nil {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(user.Password)
	if err != nil {
		return err
	}
	user.Id = id
	user.Password = hash

	if err := db.Save(user).Error; err != nil {
		return err
	}
	logger.Infof("updated user %q", user.Username)
	return nil
}

func (s *UserService) DeleteUser(id int) error {
	db := database.GetDB()
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if err := db.Delete(user).Error; err != nil {
		return err
	}
	logger.Infof("deleted user %q", user.Username)
	return nil
}

// ResetAdmin restores the default administrator credentials, creating the
// account if it is missing.
func (s *UserService) ResetAdmin(username, password string) error {
	db := database.GetDB()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	user, err := s.FindByUsername(username)
	if err != nil {
		user = &model.User{
			Username: username,
			Fullname: "Administrator",
			Role:     model.RoleAdmin,
		}
	}
	user.Password = hash
	user.Role = model.RoleAdmin
	return db.Save(user).Error
}

// ToEntity builds a user record from a validated form DTO. The password
// stays plaintext here; Create/Update hash it before persisting.
func (s *UserService) ToEntity(dto *entity.UserDto) *model.User {
	return &model.User{
		Id:       dto.Id,
		Username: dto.Username,
		Password: dto.Password,
		Fullname: dto.Fullname,
		Role:     dto.Role,
	}
}

// ToDto maps a user record to its form shape with the password blanked.
func (s *UserService) ToDto(user *model.User) *entity.UserDto {
	return &entity.UserDto{
		Id:       user.Id,
		Username: user.Username,
		Password: "",
		Fullname: user.Fullname,
		Role:     user.Role,
	}
}
