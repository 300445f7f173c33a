package select_handler

import (
	"testing"

	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// fakeContext реализует только методы telebot.Context, нужные обработчику.
type fakeContext struct {
	telebot.Context
	callback  *telebot.Callback
	sender    *telebot.User
	responded bool
	sent      []interface{}
}

func (f *fakeContext) Callback() *telebot.Callback { return f.callback }
func (f *fakeContext) Sender() *telebot.User       { return f.sender }

func (f *fakeContext) Respond(resp ...*telebot.CallbackResponse) error {
	f.responded = true
	return nil
}

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func press(t *testing.T, store database.Store, data string) *fakeContext {
	t.Helper()
	c := &fakeContext{
		callback: &telebot.Callback{Data: data},
		sender:   &telebot.User{ID: 42},
	}
	h := NewSelectHandler(store, keepalive.NewActivity())
	if err := h.Handle(c); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	return c
}

// Каждое нажатие кнопки подтверждается через Respond — иначе у
// пользователя зависает индикатор загрузки на кнопке.
func TestSelectHandlerRespondsToCallback(t *testing.T) {
	store := database.NewMemoryStore()
	_ = store.Set(42, database.DialogState{State: database.StateWaitingTime})

	c := press(t, store, "\fquiz_time|15")
	if !c.responded {
		t.Error("callback не подтверждён через Respond")
	}
	if len(c.sent) == 0 {
		t.Error("после выбора не отправлен следующий вопрос диалога")
	}

	state, _ := store.Get(42)
	if state.State != database.StateWaitingMarks || state.TimeMinutes != 15 {
		t.Errorf("после выбора времени: %+v", state)
	}
}

// Выбор «своё значение» включает ожидание текстового ввода.
func TestSelectHandlerCustom(t *testing.T) {
	store := database.NewMemoryStore()
	_ = store.Set(42, database.DialogState{State: database.StateWaitingMarks})

	c := press(t, store, "custom")
	if !c.responded {
		t.Error("callback не подтверждён через Respond")
	}

	state, _ := store.Get(42)
	if !state.CustomInput || state.State != database.StateWaitingMarks {
		t.Errorf("после выбора кастомного значения: %+v", state)
	}
}

// Нажатие без начатого диалога тоже подтверждается.
func TestSelectHandlerUnknownDialog(t *testing.T) {
	c := press(t, database.NewMemoryStore(), "\fquiz_time|15")
	if !c.responded {
		t.Error("callback не подтверждён через Respond")
	}
}
