package database

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

// Состояния диалога создания квиза.
const (
	StateWaitingFile     = "waiting_file"
	StateWaitingName     = "waiting_name"
	StateWaitingTime     = "waiting_time"
	StateWaitingMarks    = "waiting_marks"
	StateWaitingNegative = "waiting_negative"
	StateWaitingCreator  = "waiting_creator"
)

// DialogState представляет состояние диалога с пользователем:
// текущий шаг и черновик квиза, накопленный предыдущими шагами.
type DialogState struct {
	State string `json:"state"` // Текущий шаг диалога (см. константы State*).
	// CustomInput — true, когда пользователь выбрал «своё значение» и бот
	// ждёт текстовый ввод вместо нажатия кнопки.
	CustomInput bool             `json:"custom_input"`
	FileName    string           `json:"file_name"`
	Questions   []model.Question `json:"questions"`
	QuizName    string           `json:"quiz_name"`
	TimeMinutes int              `json:"time_minutes"`
	Marks       string           `json:"marks"`
	Negative    string           `json:"negative"`
}

// Store определяет интерфейс для работы с состоянием диалогов.
type Store interface {
	Get(userID int64) (DialogState, bool)
	Set(userID int64, state DialogState) error
	Delete(userID int64) error
	// Count возвращает количество активных диалогов.
	Count() int
}

// MemoryStore — in‑memory реализация.
type MemoryStore struct {
	data map[int64]DialogState
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]DialogState)}
}

func (m *MemoryStore) Get(userID int64) (DialogState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.data[userID]
	return state, ok
}

func (m *MemoryStore) Set(userID int64, state DialogState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[userID] = state
	return nil
}

func (m *MemoryStore) Delete(userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// JSONStore — реализация, сохраняющая данные в JSON-файл:
// диалоги переживают перезапуск процесса.
type JSONStore struct {
	filename string
	mu       sync.Mutex
}

// NewJSONStore создаёт новый JSONStore с указанным файлом.
func NewJSONStore(filename string) *JSONStore {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		initial := make(map[int64]DialogState)
		data, _ := json.Marshal(initial)
		_ = os.WriteFile(filename, data, 0644)
	}
	return &JSONStore{filename: filename}
}

func (j *JSONStore) load() (map[int64]DialogState, error) {
	data, err := os.ReadFile(j.filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл %s: %v", j.filename, err)
	}
	if len(data) == 0 {
		return make(map[int64]DialogState), nil
	}
	var m map[int64]DialogState
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("не удалось разобрать JSON: %v", err)
	}
	return m, nil
}

func (j *JSONStore) save(m map[int64]DialogState) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать данные: %v", err)
	}
	if err := os.WriteFile(j.filename, data, 0644); err != nil {
		return fmt.Errorf("не удалось записать файл %s: %v", j.filename, err)
	}
	return nil
}

func (j *JSONStore) Get(userID int64) (DialogState, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return DialogState{}, false
	}
	state, ok := m[userID]
	return state, ok
}

func (j *JSONStore) Set(userID int64, state DialogState) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return err
	}
	m[userID] = state
	return j.save(m)
}

func (j *JSONStore) Delete(userID int64) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return err
	}
	delete(m, userID)
	return j.save(m)
}

func (j *JSONStore) Count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return 0
	}
	return len(m)
}

// NewStore возвращает реализацию Store в зависимости от типа хранения.
func NewStore(storageType, filename string) Store {
	if storageType == "json" {
		return NewJSONStore(filename)
	}
	return NewMemoryStore()
}
