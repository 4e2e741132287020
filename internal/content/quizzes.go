package content

import "github.com/example/mlcoursebot/pkg/models"

// quizzes holds one graded quiz per lesson, keyed by the lesson order
var quizzes = map[int]*models.Quiz{
	1: {
		LessonID: 1,
		Title:    "Введение в машинное обучение",
		Question: `Что из перечисленного лучше всего описывает машинное обучение?

A) Ручное программирование всех правил поведения системы
B) Обучение компьютера на основе данных без явного программирования
C) Копирование ответов из базы данных`,
		CorrectAnswer: "B",
		Explanation:   "Машинное обучение строит модель по данным, а не по заранее прописанным правилам.",
	},
	2: {
		LessonID: 2,
		Title:    "Обучение с учителем",
		Question: `Какая задача является примером обучения с учителем?

A) Предсказание цены квартиры по размеченным историческим продажам
B) Группировка клиентов без каких-либо меток
C) Случайный выбор ответа`,
		CorrectAnswer: "A",
		Explanation:   "Регрессия по размеченным примерам - классическая задача supervised learning.",
	},
	3: {
		LessonID: 3,
		Title:    "Обучение без учителя",
		Question: `Какой алгоритм используется для кластеризации?

A) Linear Regression
B) K-means
C) Логистическая регрессия`,
		CorrectAnswer: "B",
		Explanation:   "K-means разбивает объекты на k кластеров по близости к центроидам.",
	},
	4: {
		LessonID: 4,
		Title:    "Нейронные сети",
		Question: `Зачем нейронной сети функция активации?

A) Чтобы ускорить обучение
B) Чтобы уменьшить объем данных
C) Чтобы добавить нелинейность и моделировать сложные зависимости`,
		CorrectAnswer: "C",
		Explanation:   "Без нелинейной активации многослойная сеть эквивалентна одной линейной модели.",
	},
	5: {
		LessonID: 5,
		Title:    "Оценка качества моделей",
		Question: `Модель показывает 99% точности на обучающей выборке и 60% на тестовой. Что это?

A) Переобучение
B) Недообучение
C) Идеальная модель`,
		CorrectAnswer: "A",
		Explanation:   "Большой разрыв между обучающей и тестовой точностью - признак переобучения.",
	},
}
