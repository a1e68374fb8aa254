package model

// Roles granted to panel users. The role string is used directly as the
// authorization grant on admin-only routes.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a panel account. Password always holds a bcrypt hash once the
// record has been persisted.
type User struct {
	Id       int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" form:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" form:"password"`
	Fullname string `json:"fullname" form:"fullname"`
	Role     string `json:"role" form:"role" gorm:"not null"`
}
