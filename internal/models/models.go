package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string          `gorm:"not null;index"            json:"name"`
	CategoryID  int64           `gorm:"index"                     json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID"     json:"category"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"        json:"price"`
	Quantity    int             `json:"quantity"`
	Activated   bool            `gorm:"default:false"             json:"activated"`
}

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
}

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"unique;not null"          json:"username"`
	Password  string `gorm:"not null"                 json:"-"`
	FullName  string `json:"full_name"`
	Activated bool   `gorm:"default:false"            json:"activated"`
	RoleID    int64  `gorm:"index"                    json:"role_id"`
	Role      Role   `gorm:"foreignKey:RoleID"        json:"role"`
}

type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
}
