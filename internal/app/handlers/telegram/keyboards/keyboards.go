package keyboards

import "gopkg.in/telebot.v4"

// Уникальные идентификаторы инлайн-кнопок диалога.
const (
	UniqueTime     = "quiz_time"
	UniqueMarks    = "quiz_marks"
	UniqueNegative = "quiz_negative"
	// DataCustom — выбор «своё значение»: бот ждёт текстовый ввод.
	DataCustom = "custom"
)

func inline(unique string, values []string, labels []string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var row telebot.Row
	for i, v := range values {
		row = append(row, markup.Data(labels[i], unique, v))
	}
	markup.Inline(row, telebot.Row{markup.Data("Своё значение", unique, DataCustom)})
	return markup
}

// Time — выбор времени прохождения в минутах.
func Time() *telebot.ReplyMarkup {
	return inline(UniqueTime,
		[]string{"15", "20", "25", "30"},
		[]string{"15 мин", "20 мин", "25 мин", "30 мин"})
}

// Marks — выбор баллов за правильный ответ.
func Marks() *telebot.ReplyMarkup {
	return inline(UniqueMarks,
		[]string{"1", "2", "3", "4"},
		[]string{"1", "2", "3", "4"})
}

// Negative — выбор штрафа за неправильный ответ.
func Negative() *telebot.ReplyMarkup {
	return inline(UniqueNegative,
		[]string{"0", "0.25", "0.5", "1"},
		[]string{"0", "0.25", "0.5", "1"})
}
