package list_courts

import "github.com/m04kA/SMC-PadelBooking/internal/domain"

// CourtsResponse HTTP response model
type CourtsResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// CourtResponse одна площадка каталога
type CourtResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Bookable    bool   `json:"bookable"`
}

// FromDomainCourts конвертирует каталог в HTTP response
func FromDomainCourts(courts []domain.Court) *CourtsResponse {
	resp := &CourtsResponse{Courts: make([]CourtResponse, len(courts))}
	for i, c := range courts {
		resp.Courts[i] = CourtResponse{
			Name:        c.Name,
			Description: c.Description,
			Price:       c.DisplayPrice,
			Bookable:    c.Bookable,
		}
	}
	return resp
}
