package notice

import "sync"

// Level уровень уведомления для клиента
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice короткое уведомление ("тост"), которое клиент показывает пользователю
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Collector собирает уведомления в рамках одного запроса.
// Безопасен для конкурентного использования.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

// NewCollector создает пустой сборщик
func NewCollector() *Collector {
	return &Collector{notices: make([]Notice, 0)}
}

func (c *Collector) Success(message string) {
	c.add(LevelSuccess, message)
}

func (c *Collector) Warn(message string) {
	c.add(LevelWarning, message)
}

func (c *Collector) Error(message string) {
	c.add(LevelError, message)
}

// Notices возвращает копию накопленных уведомлений в порядке добавления
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

func (c *Collector) add(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{Level: level, Message: message})
}
