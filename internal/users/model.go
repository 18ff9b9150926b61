package users

import "time"

const DefaultProfileImage = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:30;not null"`
	Email        string `gorm:"size:100;unique;not null"`
	PasswordHash string `gorm:"not null"`
	ProfileImage string

	// Optional profile fields, filled in through /user/update.
	FirstName     string `gorm:"size:50"`
	LastName      string `gorm:"size:50"`
	Age           int
	Gender        string
	Phone         string `gorm:"size:15"`
	Country       string
	City          string
	Address       string `gorm:"size:200"`
	Qualification string `gorm:"size:100"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserResponse is the public view of a user. The password hash never
// leaves the model.
type UserResponse struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	ProfileImage  string    `json:"profileImage,omitempty"`
	FirstName     string    `json:"firstName,omitempty"`
	LastName      string    `json:"lastName,omitempty"`
	Age           int       `json:"age,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Country       string    `json:"country,omitempty"`
	City          string    `json:"city,omitempty"`
	Address       string    `json:"address,omitempty"`
	Qualification string    `json:"qualification,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Summary is the compact author shape embedded in blogs, comments and
// the login response.
type Summary struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		ProfileImage:  u.ProfileImage,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Age:           u.Age,
		Gender:        u.Gender,
		Phone:         u.Phone,
		Country:       u.Country,
		City:          u.City,
		Address:       u.Address,
		Qualification: u.Qualification,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func ToSummary(u *User) Summary {
	return Summary{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}
