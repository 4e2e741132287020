package content

import "github.com/example/mlcoursebot/pkg/models"

// lessons is the static course. Keys are dense from 1; the order is the
// course order. Immutable after load.
var lessons = map[int]*models.Lesson{
	1: {
		Order: 1,
		Title: "Введение в машинное обучение",
		Content: `🎯 Что такое машинное обучение?

Машинное обучение (ML) - это подраздел искусственного интеллекта, который позволяет компьютерам учиться на основе данных без явного программирования.

Основные концепции:
1. Данные - основа для обучения
2. Алгоритмы - методы обработки данных
3. Модели - результат обучения

Типы машинного обучения:
• Обучение с учителем
• Обучение без учителя
• Обучение с подкреплением

📚 Историческая справка:
1950-е: Первые исследования в области ИИ
1959: Артур Самуэль вводит термин "машинное обучение"
1960-е: Первый персептрон (Фрэнк Розенблатт)
2010-е: Глубокое обучение и большие данные
2020-е: Трансформеры и большие языковые модели`,
		Check: models.CheckQuestion{
			Question: "Что является основой для обучения моделей машинного обучения?",
			Options: []models.AnswerOption{
				{Label: "A", Text: "Данные"},
				{Label: "B", Text: "Процессоры"},
				{Label: "C", Text: "Программисты"},
			},
			Correct: "A",
		},
		Materials: []string{
			"Артур Самуэль, «Some Studies in Machine Learning Using the Game of Checkers» (1959)",
			"Обзор: https://ru.wikipedia.org/wiki/Машинное_обучение",
		},
	},
	2: {
		Order: 2,
		Title: "Обучение с учителем",
		Content: `👨‍🏫 Supervised Learning

В обучении с учителем:
1. У нас есть размеченные данные
2. Модель учится на примерах
3. Цель - предсказать результат

Примеры задач:
• Классификация
• Регрессия
• Прогнозирование

Популярные алгоритмы:
- Linear Regression
- Decision Trees
- Random Forest`,
		Check: models.CheckQuestion{
			Question: "Какие данные нужны для обучения с учителем?",
			Options: []models.AnswerOption{
				{Label: "A", Text: "Любые, без разметки"},
				{Label: "B", Text: "Размеченные данные с правильными ответами"},
				{Label: "C", Text: "Только изображения"},
			},
			Correct: "B",
		},
		Materials: []string{
			"scikit-learn, раздел Supervised learning: https://scikit-learn.org/stable/supervised_learning.html",
		},
	},
	3: {
		Order: 3,
		Title: "Обучение без учителя",
		Content: `🤖 Unsupervised Learning

Особенности:
1. Данные без меток
2. Поиск скрытых паттернов
3. Группировка похожих объектов

Основные задачи:
• Кластеризация
• Уменьшение размерности
• Поиск аномалий

Алгоритмы:
- K-means
- DBSCAN
- PCA`,
		Check: models.CheckQuestion{
			Question: "Какая задача относится к обучению без учителя?",
			Options: []models.AnswerOption{
				{Label: "A", Text: "Регрессия"},
				{Label: "B", Text: "Классификация"},
				{Label: "C", Text: "Кластеризация"},
			},
			Correct: "C",
		},
		Materials: []string{
			"Обзор кластеризации: https://scikit-learn.org/stable/modules/clustering.html",
		},
	},
	4: {
		Order: 4,
		Title: "Нейронные сети",
		Content: `🧠 Neural Networks

Нейронная сеть - модель, вдохновленная строением мозга:
1. Нейроны объединены в слои
2. Каждая связь имеет вес
3. Обучение - подбор весов по данным

Ключевые идеи:
• Функция активации добавляет нелинейность
• Ошибка распространяется обратно (backpropagation)
• Глубокие сети - много скрытых слоев

Применения:
- Распознавание изображений
- Обработка текста
- Генерация контента`,
		Check: models.CheckQuestion{
			Question: "Как называется алгоритм обучения нейронной сети через распространение ошибки от выхода ко входу?",
			Options: []models.AnswerOption{
				{Label: "A", Text: "Backpropagation"},
				{Label: "B", Text: "K-means"},
				{Label: "C", Text: "Градиентный бустинг"},
			},
			Correct: "A",
		},
		Materials: []string{
			"Руммельхарт, Хинтон, Уильямс, «Learning representations by back-propagating errors» (1986)",
		},
	},
	5: {
		Order: 5,
		Title: "Оценка качества моделей",
		Content: `📏 Как понять, что модель хорошая?

Основные шаги:
1. Разделите данные на обучающую и тестовую выборки
2. Обучайте только на обучающей
3. Оценивайте только на тестовой

Метрики:
• Accuracy - доля правильных ответов
• Precision / Recall - точность и полнота
• MSE - средний квадрат ошибки для регрессии

Главная опасность - переобучение: модель запоминает обучающие данные и не обобщает.`,
		Check: models.CheckQuestion{
			Question: "Почему нельзя оценивать модель на обучающей выборке?",
			Options: []models.AnswerOption{
				{Label: "A", Text: "Это слишком быстро"},
				{Label: "B", Text: "Оценка будет завышенной из-за переобучения"},
				{Label: "C", Text: "Метрики на ней не считаются"},
			},
			Correct: "B",
		},
		Materials: []string{
			"Model evaluation: https://scikit-learn.org/stable/modules/model_evaluation.html",
		},
	},
}

// History is the static overview used when the AI trivia provider is not
// available
const History = `📚 История машинного обучения:

1. Зарождение (1940-1950-е):
- 1943: Маккалох и Питтс создают первую математическую модель нейрона
- 1949: Дональд Хебб описывает основной принцип обучения нейронных сетей

2. Первые шаги (1950-1960-е):
- 1957: Фрэнк Розенблатт создает персептрон
- 1959: Артур Самуэль вводит термин "машинное обучение"

3. Первая зима ИИ (1970-е):
- Критика персептрона Минским и Папертом
- Сокращение финансирования исследований

4. Возрождение (1980-е):
- 1982: Джон Хопфилд представляет рекуррентные нейронные сети
- 1986: Метод обратного распространения ошибки

5. Современная эра (1990-2010):
- Развитие методов опорных векторов
- Появление глубокого обучения

6. Эра больших данных (2010-2020):
- Развитие глубокого обучения
- Появление трансформеров

7. Настоящее время (2020+):
- Развитие больших языковых моделей
- Мультимодальные модели
- Этичный ИИ`
