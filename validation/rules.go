package validation

import "strings"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupRequest carries the signup rule chain.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,password"`
}

func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
}

func (SignupRequest) message(field, tag string) string {
	switch {
	case field == "name":
		return "Name must be between 2 and 50 characters"
	case field == "email":
		return "Please provide a valid email"
	case field == "password" && tag == "password":
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	case field == "password":
		return "Password must be at least 6 characters long"
	}
	return "Invalid value"
}

// LoginRequest carries the login rule chain.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (LoginRequest) message(field, _ string) string {
	switch field {
	case "email":
		return "Please provide a valid email"
	case "password":
		return "Password is required"
	}
	return "Invalid value"
}

// ProductRequest carries the product create/update rule chain.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required,min=10,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

func (r *ProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
}

func (ProductRequest) message(field, _ string) string {
	switch field {
	case "name":
		return "Product name must be between 2 and 100 characters"
	case "description":
		return "Description must be between 10 and 1000 characters"
	case "price":
		return "Price must be a positive number"
	case "category":
		return "Category is required"
	case "image":
		return "Image must be a valid URL"
	}
	return "Invalid value"
}

// CartItemRequest carries the add-to-cart rule chain.
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
}

func (CartItemRequest) message(field, _ string) string {
	if field == "productId" {
		return "Invalid product ID"
	}
	return "Invalid value"
}

// CouponRequest carries the coupon redemption rule chain.
type CouponRequest struct {
	Code string `json:"code" validate:"required,min=3,max=20"`
}

func (r *CouponRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
}

func (CouponRequest) message(field, _ string) string {
	if field == "code" {
		return "Coupon code must be between 3 and 20 characters"
	}
	return "Invalid value"
}
