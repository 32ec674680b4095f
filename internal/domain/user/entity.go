package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	username     string
	name         Name
	passwordHash string
	role         Role
	phone        *string
	profileImage *string
	kakaoID      *int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, username string, name Name, passwordHash string, role Role, phone *string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
	}
}

// NewKakaoUser builds an account provisioned from a Kakao profile. No local
// password exists for these accounts.
func NewKakaoUser(email Email, name Name, kakaoID int64, profileImage *string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     email.Value(),
		name:         name,
		role:         RoleUser,
		kakaoID:      &kakaoID,
		profileImage: profileImage,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	username string,
	name Name,
	passwordHash string,
	role Role,
	phone, profileImage *string,
	kakaoID *int64,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		username:     username,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		profileImage: profileImage,
		kakaoID:      kakaoID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) UpdateProfile(name Name, phone, profileImage *string) {
	u.name = name
	u.phone = phone
	u.profileImage = profileImage
}

func (u *User) PromoteToManager() {
	u.role = RoleManager
}

// LinkKakao attaches a Kakao identity to a locally registered account so
// later Kakao logins resolve by kakao id directly.
func (u *User) LinkKakao(kakaoID int64, profileImage *string) {
	u.kakaoID = &kakaoID
	if u.profileImage == nil {
		u.profileImage = profileImage
	}
}

func (u *User) CanManageSchedule(managerID uuid.UUID) bool {
	return u.role == RoleAdmin || u.id == managerID
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Username() string      { return u.username }
func (u *User) Name() Name            { return u.name }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Phone() *string        { return u.phone }
func (u *User) ProfileImage() *string { return u.profileImage }
func (u *User) KakaoID() *int64       { return u.kakaoID }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
