package models

// Counter is a named accumulator for dashboard statistics.
type Counter struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Value int    `json:"value"`
}
