package services

// Actor is the caller as seen by the authorization check. UserID is nil for
// anonymous requests.
type Actor struct {
	UserID  *uint
	IsAdmin bool
}

// CanModify admits admins and the owner of a resource. Anonymous rows
// (owner == nil) can only be changed by an admin.
func (a Actor) CanModify(owner *uint) bool {
	if a.IsAdmin {
		return true
	}
	return a.UserID != nil && owner != nil && *a.UserID == *owner
}
