package dto

type RegisterInput struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	AgeBracket string  `json:"age_bracket,omitempty"`
	PackageID  *string `json:"package_id,omitempty"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
