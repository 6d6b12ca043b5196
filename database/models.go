package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Post struct {
	gorm.Model
	Title    string
	Slug     string `gorm:"uniqueIndex"`
	Markdown string `gorm:"type:text"`
}

type User struct {
	gorm.Model
	Email        string         `gorm:"uniqueIndex"`
	PasswordHash datatypes.JSON `gorm:"type:json"`
	SessionToken string         `gorm:"index;unique"`
	Notes        []Note         `gorm:"foreignKey:UserID"`
}

type Note struct {
	gorm.Model
	Title  string
	Body   string `gorm:"type:text"`
	UserID uint   `gorm:"index"`
}
