package db_models

// SensorReading is one raw hourly visitor count reported by a site sensor.
// Rows are append-only; no referential integrity against Site is enforced.
type SensorReading struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Date     string `gorm:"not null" json:"date"` // "2006-01-02"
	Hour     string `gorm:"not null" json:"hour"` // "15:04"
	SiteName string `gorm:"column:site_name;not null;index" json:"site_name"`
	Count    int    `gorm:"not null" json:"count"`
}

func (SensorReading) TableName() string {
	return "collected_data_from_sensors"
}
