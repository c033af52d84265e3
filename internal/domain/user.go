package domain

// Role represents the permission tier of a user
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// IsElevated reports whether the role grants moderation capabilities.
// Moderator and admin are intentionally equivalent tiers.
func (r Role) IsElevated() bool {
	return r == RoleModerator || r == RoleAdmin
}

// User represents a registered user of the discussion board
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(120);uniqueIndex:uq_users_email;not null" json:"email"`
	Dept         string `gorm:"type:varchar(100)" json:"dept"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
