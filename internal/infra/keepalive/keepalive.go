package keepalive

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// Activity — потокобезопасная отметка последней активности приложения.
// Обновляется HTTP-запросами и действиями пользователей в боте.
type Activity struct {
	mu   sync.RWMutex
	last time.Time
}

// NewActivity создаёт отметку, инициализированную текущим моментом.
func NewActivity() *Activity {
	return &Activity{last: time.Now()}
}

// Touch фиксирует активность.
func (a *Activity) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = time.Now()
}

// Last возвращает момент последней активности.
func (a *Activity) Last() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last
}

// Worker периодически пингует URL приложения, чтобы хостинг
// не усыплял процесс между обращениями пользователей.
type Worker struct {
	url      string
	interval time.Duration
	client   *http.Client
}

// NewWorker создаёт воркер. Пустой url означает, что пинги не нужны.
func NewWorker(url string, interval time.Duration) *Worker {
	return &Worker{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Run пингует до отмены контекста. Блокирует вызывающую горутину.
func (w *Worker) Run(ctx context.Context) {
	if w.url == "" {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.ping(ctx); err != nil {
				log.Printf("[keepalive] ping failed: %v", err)
			}
		}
	}
}

func (w *Worker) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url+"/wake", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}
