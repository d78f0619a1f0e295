package appointment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// record формат хранения одной записи
type record struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD, при чтении также "Mon Jan 02 2006"
	Time  string `json:"time"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func toRecord(a domain.Appointment) record {
	return record{
		ID:    a.ID,
		Date:  a.Date.Format(domain.DateFormat),
		Time:  a.Time.String(),
		Name:  a.ClientName,
		Phone: a.ClientPhone,
	}
}

func (r record) toDomain() (domain.Appointment, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: id=%d: %v", ErrInvalidRecord, r.ID, err)
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: id=%d: %v", ErrInvalidRecord, r.ID, err)
	}

	return domain.Appointment{
		ID:          r.ID,
		Date:        date,
		Time:        slot,
		ClientName:  r.Name,
		ClientPhone: r.Phone,
	}, nil
}

// parseDate принимает ISO дату и старый текстовый формат виджета
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(domain.LegacyDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q", s)
	}
	return t, nil
}

// encodeCollection сериализует коллекцию в JSON массив
func encodeCollection(appointments []domain.Appointment) ([]byte, error) {
	records := make([]record, 0, len(appointments))
	for _, a := range appointments {
		records = append(records, toRecord(a))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// decodeCollection разбирает JSON массив записей.
// Некорректный JSON дает ошибку: вызывающий решает, считать ли коллекцию пустой.
// Отдельные записи с некорректной датой или временем пропускаются и возвращаются в skipped.
func decodeCollection(data []byte) (appointments []domain.Appointment, skipped []error, err error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	appointments = make([]domain.Appointment, 0, len(records))
	for _, r := range records {
		a, err := r.toDomain()
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		appointments = append(appointments, a)
	}
	return appointments, skipped, nil
}
