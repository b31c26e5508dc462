package user

type User struct {
	Username string `json:"username"`
	Password []byte `json:"-"`
	Id       int64  `json:"id"`
}

// Initial is the first letter of the username, used by clients for avatars.
func (u *User) Initial() string {
	for _, r := range u.Username {
		return string(r)
	}
	return ""
}
