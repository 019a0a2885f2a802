package models

type City struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	IsActive int    `json:"is_active" gorm:"default:1"`
}

func (City) TableName() string { return "city" }
