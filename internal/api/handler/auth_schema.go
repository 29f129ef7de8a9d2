package handler

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Contact  string `json:"contact"`
}

type loginRequest struct {
	// Identifier is the canonical field; username and email are accepted
	// as aliases so existing clients keep working.
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password" validate:"required"`
}

func (r loginRequest) identifier() string {
	switch {
	case r.Identifier != "":
		return r.Identifier
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	Redirect    string `json:"redirect"`
}
