package create_booking

// CreateBookingRequest HTTP request model.
// Пустые поля не отклоняются здесь: виджет сам показывает предупреждение пользователю.
type CreateBookingRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
