package user

import "time"

// User is a dashboard account. The password column holds a bcrypt hash.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         string    `gorm:"column:role;size:20;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
