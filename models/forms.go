package models

// SignupForm is the input of the signup page.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm is the input of the login page.
type LoginForm struct {
	Email    string
	Password string
}

// ProductForm is the input of the add-product page. Price is in cents and
// ImagePath is empty when no acceptable image was uploaded.
type ProductForm struct {
	Title       string
	Price       int64
	Description string
	ImagePath   string
}
