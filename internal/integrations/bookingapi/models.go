package bookingapi

// CreateBookingRequest тело POST /api/bookings
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CourtName string `json:"courtName"`
	Date      string `json:"date"` // "2025-10-15"
	Time      string `json:"time"` // "10:00"
	Duration  int    `json:"duration"`
}

// CreateBookingResponse ответ POST /api/bookings
type CreateBookingResponse struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

// Booking созданное бронирование
// Поля могут отсутствовать: клиент подставляет значения по умолчанию сам
type Booking struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CourtName   string `json:"courtName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"`
	TotalAmount int64  `json:"totalAmount"`
}

// CheckUserRequest тело POST /api/bookings/check-user
type CheckUserRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LoginRequest тело POST /api/users/login
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// SignupRequest тело POST /api/users/signup
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// errorBody формат ошибок сервера
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
