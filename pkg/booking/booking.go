// Package booking describes the service-appointment offering and
// validates incoming booking requests. Requests are not stored: an
// accepted request only produces a confirmation notification.
package booking

import (
	"errors"
	"fmt"
	"time"
)

// Service is one entry of the service list. Icon is an opaque display
// tag for the presentation layer.
type Service struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Services returns the services offered by the workshop.
func Services() []Service {
	return []Service{
		{Icon: "Wrench", Title: "Диагностика", Description: "Компьютерная диагностика всех систем автомобиля"},
		{Icon: "Settings", Title: "Ремонт", Description: "Профессиональный ремонт любой сложности"},
		{Icon: "Droplet", Title: "Замена масла", Description: "Быстрая замена масла и фильтров"},
		{Icon: "Zap", Title: "Электрика", Description: "Ремонт электрооборудования и проводки"},
		{Icon: "Gauge", Title: "Шиномонтаж", Description: "Шиномонтаж, балансировка, хранение"},
		{Icon: "Shield", Title: "ТО", Description: "Техническое обслуживание по регламенту"},
	}
}

// TimeSlots returns the bookable appointment times.
func TimeSlots() []string {
	return []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}
}

// DateLayout is the wire format of Request.Date.
const DateLayout = "2006-01-02"

// Request is a booking form submission.
type Request struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Car     string `json:"car"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Comment string `json:"comment"`
}

// ErrPastDate indicates a requested date before today.
var ErrPastDate = errors.New("дата уже прошла")

// Validate checks the required fields, the date and the time slot.
// Comment is optional.
func (r Request) Validate(now time.Time) error {
	required := []struct{ field, value string }{
		{"name", r.Name},
		{"phone", r.Phone},
		{"car", r.Car},
		{"service", r.Service},
		{"date", r.Date},
		{"time", r.Time},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("поле %s обязательно", f.field)
		}
	}

	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return fmt.Errorf("некорректная дата %q", r.Date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return ErrPastDate
	}

	for _, slot := range TimeSlots() {
		if r.Time == slot {
			return nil
		}
	}
	return fmt.Errorf("недоступное время %q", r.Time)
}
