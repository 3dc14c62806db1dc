// Методы клиента для защищённых эндпоинтов пользователей.
package api

// DeleteUserResponse описывает ответ сервера при удалении пользователя.
type DeleteUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userID"`
}

// Users возвращает список пользователей.
//
// Требует валидный сессионный токен (Bearer).
func (c *Client) Users(authToken string) ([]User, error) {
	var resp []User
	err := c.GetJSON("/users", &resp, authToken)
	return resp, err
}

// DeleteUser удаляет пользователя по id.
//
// Требует валидный сессионный токен (Bearer).
func (c *Client) DeleteUser(authToken, id string) (DeleteUserResponse, error) {
	var resp DeleteUserResponse
	err := c.DeleteJSON("/"+id, &resp, authToken)
	return resp, err
}
