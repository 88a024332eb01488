package models

// InstallerModel maps the legacy installers table. Column names follow the
// existing schema, including its Int_ prefix convention.
type InstallerModel struct {
	ID       int     `gorm:"column:id;primaryKey"`
	Name     string  `gorm:"column:Int_name"`
	Number   string  `gorm:"column:Int_number"`
	Password string  `gorm:"column:Int_pass;not null"`
	Code     string  `gorm:"column:Int_code;not null"`
	Type     *string `gorm:"column:Int_type"`
	Branch   *string `gorm:"column:Int_Branch"`
	City     *string `gorm:"column:Int_City"`
}

func (InstallerModel) TableName() string {
	return "installers"
}
