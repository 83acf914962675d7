package transport

import "github.com/shopspring/decimal"

// ProductDto is what the product forms bind to. The avatar field carries the
// stored filename; the uploaded file itself arrives as the multipart "path"
// part and only its original filename is kept.
type ProductDto struct {
	ID          int64           `json:"id"          form:"id"`
	Name        string          `json:"name"        form:"name"`
	Category    CategoryDto     `json:"category"`
	CategoryID  int64           `json:"category_id" form:"category_id"`
	Description string          `json:"description" form:"description"`
	Avatar      string          `json:"avatar"      form:"avatar"`
	Price       decimal.Decimal `json:"price"       form:"price"`
	Quantity    int             `json:"quantity"    form:"quantity"`
	Activated   bool            `json:"activated"   form:"activated"`
}

type CategoryDto struct {
	ID   int64  `json:"id"   form:"id"`
	Name string `json:"name" form:"name"`
}

// UserDto.Password holds the plaintext submitted by the form on the way in and
// the stored hash on the way out.
type UserDto struct {
	ID        int64   `json:"id"        form:"id"`
	Username  string  `json:"username"  form:"username"`
	Password  string  `json:"-"         form:"password"`
	FullName  string  `json:"full_name" form:"full_name"`
	Activated bool    `json:"activated" form:"activated"`
	Role      RoleDto `json:"role"`
	RoleID    int64   `json:"role_id"   form:"role_id"`
}

type RoleDto struct {
	ID   int64  `json:"id"   form:"id"`
	Name string `json:"name" form:"name"`
}
