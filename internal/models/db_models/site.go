package db_models

// Site is a lesser-known point of interest offered as a detour suggestion.
// The name is the identity used to join against sensor readings.
type Site struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SiteName    string `gorm:"column:site_name;uniqueIndex;not null" json:"site_name"`
	Category    string `gorm:"not null" json:"category"`
	Description string `gorm:"not null" json:"description"`
}

func (Site) TableName() string {
	return "less_known_sites"
}
