package book

import "time"

// SaleMissEvent 缺货事件:一次购买中某本图书库存不足
type SaleMissEvent struct {
	ISBN       int64     `json:"isbn"`
	Requested  int       `json:"requested"`
	Available  int       `json:"available"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewSaleMissEvents 由缺货明细生成事件,每本缺货图书一个
func NewSaleMissEvents(shortages []Shortage, at time.Time) []SaleMissEvent {
	events := make([]SaleMissEvent, len(shortages))
	for i, s := range shortages {
		events[i] = SaleMissEvent{
			ISBN:       s.ISBN,
			Requested:  s.Requested,
			Available:  s.Available,
			OccurredAt: at,
		}
	}
	return events
}
