package models

// User is an author of posts. Username and email are each globally unique.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"userId"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
}

func (User) TableName() string {
	return "users"
}

// UserRequest is the body accepted by POST /users/create.
type UserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

// UserView is the public representation of a user.
type UserView struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	PostsID  []uint `json:"postsId"`
}
