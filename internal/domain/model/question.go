package model

// LineBreak — маркер переноса строки внутри одного поля вопроса.
// Потребитель полей — HTML-рендер квиза, поэтому маркер — HTML-тег.
const LineBreak = "<br>"

// Question представляет один вопрос квиза в каноническом виде.
// Набор полей и JSON-ключи — жёсткий контракт рендера: HTML-квиз ожидает
// ровно эти ключи, включая поля-заглушки для изображений и сортировки.
// Все значения строковые, в том числе числовые.
type Question struct {
	ID           string `json:"id"`
	QuizID       string `json:"quiz_id"`
	QuestionText string `json:"question"`
	Option1      string `json:"option_1"`
	Option2      string `json:"option_2"`
	Option3      string `json:"option_3"`
	Option4      string `json:"option_4"`
	Option5      string `json:"option_5"`
	// Answer — порядковый номер правильного варианта "1".."5",
	// пустая строка, если строка ответа не распознана.
	Answer       string `json:"answer"`
	SolutionText string `json:"solution_text"`

	CorrectScore  string `json:"correct_score"`
	NegativeScore string `json:"negative_score"`

	Deleted         string `json:"deleted"`
	DifficultyLevel string `json:"difficulty_level"`
	QuestionImage   string `json:"question_image"`
	OptionImage1    string `json:"option_image_1"`
	OptionImage2    string `json:"option_image_2"`
	OptionImage3    string `json:"option_image_3"`
	OptionImage4    string `json:"option_image_4"`
	OptionImage5    string `json:"option_image_5"`
	SolutionHeading string `json:"solution_heading"`
	SolutionImage   string `json:"solution_image"`
	SolutionVideo   string `json:"solution_video"`
	SortingParam    string `json:"sortingparam"`
}

// SetOption записывает текст варианта в слот с порядковым номером 1..5.
func (q *Question) SetOption(ordinal int, text string) {
	switch ordinal {
	case 1:
		q.Option1 = text
	case 2:
		q.Option2 = text
	case 3:
		q.Option3 = text
	case 4:
		q.Option4 = text
	case 5:
		q.Option5 = text
	}
}

// Option возвращает текст варианта по порядковому номеру 1..5.
func (q *Question) Option(ordinal int) string {
	switch ordinal {
	case 1:
		return q.Option1
	case 2:
		return q.Option2
	case 3:
		return q.Option3
	case 4:
		return q.Option4
	case 5:
		return q.Option5
	}
	return ""
}

// OptionCount возвращает количество заполненных слотов вариантов.
// Слоты заполняются по порядку, поэтому достаточно найти первый пустой.
func (q *Question) OptionCount() int {
	for i := 1; i <= 5; i++ {
		if q.Option(i) == "" {
			return i - 1
		}
	}
	return 5
}

// Options возвращает непустые варианты в порядке слотов.
func (q *Question) Options() []string {
	var opts []string
	for i := 1; i <= 5; i++ {
		if o := q.Option(i); o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}
