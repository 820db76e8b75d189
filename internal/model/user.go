package model

// User is a provisioned account profile. Credentials are never stored here;
// the token store owns the credential tuples.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;size:64"`
	Name  string `json:"name" gorm:"size:64;not null"`
	Email string `json:"email" gorm:"size:128"`
}

// TableName returns the table name for GORM.
func (u *User) TableName() string {
	return "users"
}
