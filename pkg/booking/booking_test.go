package booking

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Name:    "Иван",
		Phone:   "+7 (123) 456-78-90",
		Car:     "Toyota Camry",
		Service: "Диагностика",
		Date:    "2026-09-01",
		Time:    "10:00",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validRequest().Validate(now); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidateCommentOptional(t *testing.T) {
	r := validRequest()
	r.Comment = "стук в передней подвеске"
	if err := r.Validate(now); err != nil {
		t.Fatalf("comment must be optional, got %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	blank := func(r *Request, field string) {
		switch field {
		case "name":
			r.Name = ""
		case "phone":
			r.Phone = ""
		case "car":
			r.Car = ""
		case "service":
			r.Service = ""
		case "date":
			r.Date = ""
		case "time":
			r.Time = ""
		}
	}
	for _, field := range []string{"name", "phone", "car", "service", "date", "time"} {
		r := validRequest()
		blank(&r, field)
		if err := r.Validate(now); err == nil {
			t.Fatalf("expected error for missing %s", field)
		}
	}
}

func TestValidateSameDayAllowed(t *testing.T) {
	r := validRequest()
	r.Date = "2026-08-31"
	if err := r.Validate(now); err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
}

func TestValidatePastDate(t *testing.T) {
	r := validRequest()
	r.Date = "2026-08-30"
	if err := r.Validate(now); !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}
}

func TestValidateBadDate(t *testing.T) {
	r := validRequest()
	r.Date = "завтра"
	if err := r.Validate(now); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestValidateUnknownSlot(t *testing.T) {
	r := validRequest()
	r.Time = "13:00"
	if err := r.Validate(now); err == nil {
		t.Fatal("expected error for unavailable slot")
	}
}

func TestServices(t *testing.T) {
	services := Services()
	if len(services) != 6 {
		t.Fatalf("expected 6 services, got %d", len(services))
	}
	if services[0].Title != "Диагностика" {
		t.Fatalf("unexpected first service: %s", services[0].Title)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	// 13:00 is the lunch break.
	for _, s := range slots {
		if s == "13:00" {
			t.Fatal("13:00 must not be bookable")
		}
	}
}
