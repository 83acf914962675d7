package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/hash"
	"github.com/concungshop/shop-admin/internal/mapper"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

// FindAll returns the activated accounts only; deactivated users stay out of
// every admin listing.
func (s *UserService) FindAll(ctx context.Context) ([]transport.UserDto, error) {
	users, err := s.Repo.GetUsersByActivated(ctx, true)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDto(users), nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*transport.UserDto, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.UserToDto(*user)
	return &dto, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*transport.UserDto, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dto := mapper.UserToDto(*user)
	return &dto, nil
}

// Save persists the user, hashing the password only when the form submitted a
// non-empty one. An empty password keeps the stored hash untouched.
func (s *UserService) Save(ctx context.Context, dto transport.UserDto) (*transport.UserDto, error) {
	user := mapper.UserFromDto(dto)
	if dto.Password != "" {
		hashed, err := hash.HashPassword(dto.Password, hash.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	} else if user.ID != 0 {
		existing, err := s.Repo.GetUser(ctx, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			user.Password = existing.Password
		}
	}
	saved, err := s.Repo.SaveUser(ctx, &user)
	if err != nil {
		return nil, err
	}
	out := mapper.UserToDto(*saved)
	return &out, nil
}

// Remove accepts the call and deletes nothing; user rows are never removed,
// only deactivated.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	return nil
}

// FindByActivatedAndRole filters by role; the activation filter has always run
// with the literal true, whatever the caller passes.
func (s *UserService) FindByActivatedAndRole(ctx context.Context, isActivated bool, role transport.RoleDto) ([]transport.UserDto, error) {
	users, err := s.Repo.GetUsersByActivatedAndRole(ctx, true, role.ID)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDto(users), nil
}

// UpdatePassword recomputes a hash of the user's stored password value and
// drops the result, so nothing observable changes.
// TODO: hash the password submitted on the DTO and persist it; the reset form
// posts here expecting the change to stick.
func (s *UserService) UpdatePassword(ctx context.Context, dto transport.UserDto) error {
	user, err := s.Repo.GetUserByUsername(ctx, dto.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if _, err := hash.HashPassword(user.Password, hash.DefaultCost); err != nil {
		return err
	}
	return nil
}

func (s *UserService) UpdateRole(ctx context.Context, dto transport.UserDto) error {
	user, err := s.Repo.GetUser(ctx, dto.ID)
	if err != nil {
		return err
	}
	roleID := dto.RoleID
	if roleID == 0 {
		roleID = dto.Role.ID
	}
	user.RoleID = roleID
	user.Role = mapper.RoleFromDto(dto.Role)
	_, err = s.Repo.SaveUser(ctx, user)
	return err
}

// FindByFullNameContainingAndActivated matches a full-name substring; the
// activation filter is the literal true, as in FindByActivatedAndRole.
func (s *UserService) FindByFullNameContainingAndActivated(ctx context.Context, fullname string, isActivated bool) ([]transport.UserDto, error) {
	users, err := s.Repo.GetUsersByFullNameContainingAndActivated(ctx, fullname, true)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToDto(users), nil
}
