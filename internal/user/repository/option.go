package repository

// CreateOption carries the fields for a new user row.
type CreateOption struct {
	KakaoID int64
	Name    string
	Email   string
}

// UpdateProfileOption refreshes the profile fields on sign-in.
type UpdateProfileOption struct {
	Name  string
	Email string
}
