package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/util/crypto"
)

func TestUserCreateHashesPassword(t *testing.T) {
	setupTestDB(t)
	svc := UserService{}

	user := &model.User{
		Username: "jdoe",
		Password: "Passw0rd!",
		Fullname: "John Doe",
		Role:     model.RoleUser,
	}
	require.NoError(t, svc.CreateUser(user))

	got, err := svc.FindByUsername("jdoe")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", got.Password)
	assert.True(t, crypto.CheckPasswordHash(got.Password, "Passw0rd!"))
}

func TestUserUsernameConflict(t *testing.T) {
	setupTestDB(t)
	svc := UserService{}

	require.NoError(t, svc.CreateUser(&model.User{
		Username: "jdoe", Password: "Passw0rd!", Fullname: "John Doe", Role: model.RoleUser,
	}))

	err := svc.CreateUser(&model.User{
		Username: "jdoe", Password: "Other1pw!", Fullname: "Impostor", Role: model.RoleUser,
	})
	assert.True(t, errors.Is(err, ErrConflict))

	users, err := svc.GetUsers()
	require.NoError(t, err)
	// one seeded admin plus the single jdoe
	assert.Len(t, users, 2)
}

func TestUserCheckUser(t *testing.T) {
	setupTestDB(t)
	svc := UserService{}

	username, password := database.DefaultCredentials()
	user := svc.CheckUser(username, password)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)

	assert.Nil(t, svc.CheckUser(username, "wrong"))
	assert.Nil(t, svc.CheckUser("nobody", password))
}

func TestUserUpdateRehashes(t *testing.T) {
	setupTestDB(t)
	svc := UserService{}

	user := &model.User{Username: "jdoe", Password: "Passw0rd!", Fullname: "John Doe", Role: model.RoleUser}
	require.NoError(t, svc.CreateUser(user))

	input := &model.User{Username: "jdoe", Password: "NewPass1!", Fullname: "John Doe", Role: model.RoleAdmin}
	require.NoError(t, svc.UpdateUser(user.Id, input))

	got, err := svc.GetUser(user.Id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.True(t, crypto.CheckPasswordHash(got.Password, "NewPass1!"))
	assert.False(t, crypto.CheckPasswordHash(got.Password, "Passw0rd!"))
}

func TestUserToDtoBlanksPassword(t *testing.T) {
	svc := UserService{}

	dto := svc.ToDto(&model.User{
		Id: 3, Username: "jdoe", Password: "$2a$10$hash", Fullname: "John Doe", Role: model.RoleUser,
	})
	assert.Empty(t, dto.Password)
	assert.Equal(t, "jdoe", dto.Username)
}

func TestResetAdmin(t *testing.T) {
	setupTestDB(t)
	svc := UserService{}

	username, _ := database.DefaultCredentials()
	require.NoError(t, svc.ResetAdmin(username, "Fresh1pw!"))

	user := svc.CheckUser(username, "Fresh1pw!")
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)
}
