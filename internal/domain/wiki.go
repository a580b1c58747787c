package domain

type Wiki struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Private bool   `json:"private"`
	UserID  int64  `json:"user_id"`
	Created int64  `json:"created,omitempty"`
	Updated int64  `json:"updated,omitempty"`
}

// IsOwnedBy reports whether the user owns the wiki. A nil user owns nothing.
func (w Wiki) IsOwnedBy(u *User) bool {
	return u != nil && u.ID == w.UserID
}

// WikiParams are the attributes a user may assign to a wiki. A nil field is left untouched.
type WikiParams struct {
	Title   *string
	Body    *string
	Private *bool
}

// Apply assigns the non nil params to the wiki.
func (p WikiParams) Apply(w *Wiki) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Body != nil {
		w.Body = *p.Body
	}
	if p.Private != nil {
		w.Private = *p.Private
	}
}

type Revision struct {
	ID       int64  `json:"id"`
	WikiID   int64  `json:"wiki_id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Title    string `json:"title"`
	Diff     string `json:"diff"`
	Created  int64  `json:"created"`
}
