package web3forms

// SubmitRequest тело запроса отправки формы
type SubmitRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Botcheck  bool   `json:"botcheck"`
}

// SubmitResponse ответ сервиса
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
