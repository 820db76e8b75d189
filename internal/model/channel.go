package model

// Channel is a static reference list entry. Read-only from the service's
// perspective; rows are loaded once from the seed file at startup.
type Channel struct {
	ID   string `json:"id" gorm:"primaryKey;size:64"`
	Name string `json:"name" gorm:"size:128;not null"`
}

// TableName returns the table name for GORM.
func (c *Channel) TableName() string {
	return "channels"
}
