package domain

// User is created once at seed time and never mutated.
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;not null;uniqueIndex" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
