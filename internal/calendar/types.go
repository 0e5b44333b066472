package calendar

// Calendar is one entry of the user's calendar list.
type Calendar struct {
	ID         string
	Summary    string
	Primary    bool
	AccessRole string
}
