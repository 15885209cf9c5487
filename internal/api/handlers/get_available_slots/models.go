package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-PadelBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`
	CourtName string         `json:"courtName"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest формирует запрос к use case с парсингом даты
func ToUseCaseRequest(court, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CourtName: court,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		CourtName: resp.CourtName,
		Slots:     slots,
	}
}
