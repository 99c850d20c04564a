// article.go - Defines the Article model for the database

package models

import "time"

// Article is a single climate content piece. Category is a free-text tag
// ("Science", "Solutions", "Impact" in the shipped data), not an enum.
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Subtitle    string    `gorm:"size:500;not null" json:"subtitle"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	DateCreated time.Time `json:"date_created"`
	Author      string    `gorm:"size:100;not null" json:"author"`
}
