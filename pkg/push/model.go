package push

type SendRequest struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type SendResponse struct {
	ID string `json:"id"`
}
