package topics

import "strings"

// Question is one entry in a topic's question sequence. The explanation
// is shown to the user after answering, correct or not.
type Question struct {
	Prompt  string
	Answer  string
	Explain string
}

// Accepts reports whether a submitted answer matches the canonical one.
// Matching is exact after trimming and Unicode case folding; there is no
// partial credit.
func (q Question) Accepts(submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), q.Answer)
}

var order = []string{"Информатика", "Логика", "Алгоритмы", "Файлы"}

var bank = map[string][]Question{
	"Информатика": {
		{
			Prompt:  "Сколько бит в одном байте?",
			Answer:  "8",
			Explain: "1 байт = 8 бит",
		},
		{
			Prompt:  "Сколько различных значений можно закодировать 4 битами?",
			Answer:  "16",
			Explain: "4 бита кодируют 2^4 = 16 различных значений",
		},
		{
			Prompt:  "Чему равно число 1010 в двоичной системе, если перевести его в десятичную?",
			Answer:  "10",
			Explain: "1010₂ = 8 + 0 + 2 + 0 = 10",
		},
	},
	"Логика": {
		{
			Prompt:  "Чему равно 1 AND 0?",
			Answer:  "0",
			Explain: "Конъюнкция (И) - 1 только если оба операнда равны 1",
		},
		{
			Prompt:  "Чему равно 1 OR 0?",
			Answer:  "1",
			Explain: "Дизъюнкция (ИЛИ) - 1 если хотя бы один операнд равен 1",
		},
		{
			Prompt:  "Чему равно NOT 0?",
			Answer:  "1",
			Explain: "Инверсия (НЕ) меняет значение на противоположное",
		},
	},
	"Алгоритмы": {
		{
			Prompt:  "Что такое алгоритм?",
			Answer:  "последовательность действий",
			Explain: "Алгоритм - это точная последовательность действий для достижения цели",
		},
		{
			Prompt:  "Как называется многократное повторение действий в алгоритме?",
			Answer:  "цикл",
			Explain: "Цикл - конструкция для многократного выполнения одних и тех же действий",
		},
	},
	"Файлы": {
		{
			Prompt:  "Сколько байт в 1 Кбайте?",
			Answer:  "1024",
			Explain: "1 Кбайт = 1024 байта",
		},
		{
			Prompt:  "Сколько Кбайт в 1 Мбайте?",
			Answer:  "1024",
			Explain: "1 Мбайт = 1024 Кбайта",
		},
	},
}

// Names returns topic names in menu order.
func Names() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}

// Get returns the question sequence for a topic. The second return value
// is false for unknown topics; in normal operation topic names come from
// a closed menu, but a bad name must not crash the bot.
func Get(name string) ([]Question, bool) {
	qs, ok := bank[name]
	return qs, ok
}
