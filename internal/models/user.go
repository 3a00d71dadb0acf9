package models

// User is a household member. PasswordHash never leaves the server; handlers
// return the UserView projection instead.
type User struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	GiphyLink    string `json:"giphyLink"`
	PasswordHash string `json:"-"`
}

type UserView struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	GiphyLink string `json:"giphyLink"`
}

func (u User) View() UserView {
	return UserView{
		UserID:    u.UserID,
		UserName:  u.UserName,
		GiphyLink: u.GiphyLink,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateGiphyRequest struct {
	UserID    string  `json:"userId"`
	GiphyLink *string `json:"giphyLink"`
}
