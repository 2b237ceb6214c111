package models

// Admin is a back-office account. IDs are short codes like "001A" handed out
// manually, not generated by the database. Admins are read-only in this app:
// no self-edit, no registration endpoint.
type Admin struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	AdminName string `json:"adminname" gorm:"column:adminname;uniqueIndex"`
	Password  string `json:"password"`
	Contact   string `json:"contact"`
	Status    string `json:"status" gorm:"default:active"`
}

func (Admin) TableName() string {
	return "admins"
}
