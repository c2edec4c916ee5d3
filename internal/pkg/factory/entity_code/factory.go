package entity_code

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// MaxAttempts — сколько раз координатор пробует сгенерировать
// уникальный код до отказа с CodeGenerationFailed.
const MaxAttempts = 5

const (
	PrefixTrip        = "TRP"
	PrefixMaintenance = "MNT"
	PrefixFuelLog     = "FUL"

	randomLen = 6
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CodeFactory выпускает человекочитаемые коды вида PFX-123456-A1B2C3.
// Уникальность кодов фабрика не гарантирует — её проверяет вызывающая
// сторона ограниченным числом попыток. Одна фабрика обслуживает
// несколько сервисов, поэтому доступ к генератору сериализуется.
type CodeFactory struct {
	now func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

func New() *CodeFactory {
	return &CodeFactory{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *CodeFactory) NewCode(prefix string) string {
	millis := f.now().UnixMilli() % 1_000_000

	var sb strings.Builder
	sb.Grow(randomLen)

	f.mu.Lock()
	for i := 0; i < randomLen; i++ {
		sb.WriteByte(alphabet[f.rand.Intn(len(alphabet))])
	}
	f.mu.Unlock()

	return fmt.Sprintf("%s-%06d-%s", prefix, millis, sb.String())
}
