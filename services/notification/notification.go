package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type MessageBuilder struct {
	empID  uint
	month  string
	year   int
	netPay float64
}

func NewMessageBuilder(empID uint, month string, year int, netPay float64) *MessageBuilder {
	return &MessageBuilder{
		empID:  empID,
		month:  month,
		year:   year,
		netPay: netPay,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đã tạo phiếu lương kỳ %s/%d cho nhân viên %d, thực lãnh %.2f.", b.month, b.year, b.empID, b.netPay)
}
