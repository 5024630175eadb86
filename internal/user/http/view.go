package http

import userdomain "github.com/bizdir/backend/internal/user/domain"

// userView is the outbound projection; the password hash never leaves
// the service boundary.
type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func toUserView(u userdomain.User) userView {
	return userView{
		ID:        string(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func toUserViews(users []userdomain.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views
}
