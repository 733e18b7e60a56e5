package handler

// Request and response types owned by the transport layer. These are
// intentionally separate from domain types so the JSON contract is not
// coupled to internal service changes.

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type dashboardResponse struct {
	Message string `json:"message"`
}

type blogRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type chatRequest struct {
	Message  string `json:"message" validate:"required"`
	Language string `json:"language"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chatErrorResponse is the error envelope of the chat route, distinct from
// the {"message": ...} envelope of the admin and blog routes.
type chatErrorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}
