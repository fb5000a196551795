package models

// Session pairs the opaque token accepted by the remote API with the user it
// identifies. There is no local expiry; a rejected token ends the session.
type Session struct {
	Token string     `json:"session_token"`
	User  UserRecord `json:"user"`
}

func (s *Session) IsValid() bool {
	return s != nil && s.Token != "" && s.User.UserID != ""
}
