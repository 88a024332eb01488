package models

// DeviceModel maps the inventory user_info table. Installed is the legacy
// tri-state column: NULL = pending, false = processing, true = rejected.
type DeviceModel struct {
	DeviceID     string `gorm:"column:device_id;primaryKey"`
	GroupAccount string `gorm:"column:group_account"`
	PhoneNumber  string `gorm:"column:phone_number"`
	Installed    *bool  `gorm:"column:isinstalled"`
}

func (DeviceModel) TableName() string {
	return "user_info"
}
