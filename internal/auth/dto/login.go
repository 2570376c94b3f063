package dto

// LoginInput is the decoded login form. Username holds either a username or
// an email address.
type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
