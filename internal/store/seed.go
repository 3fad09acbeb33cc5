package store

import (
	"time"

	"otbasy/internal/models"
)

// The demonstration dataset below is what a fresh installation starts with.
// Relative timestamps are anchored on the instant the seed runs; fixed
// calendar dates stay fixed.

func demoUser() *models.User {
	return &models.User{
		ID:    "1",
		Name:  "Айгүл Назарбаева",
		Email: "aigul@example.com",
	}
}

func seedFamilies() []models.Family {
	return []models.Family{
		{
			ID:   "1",
			Name: "Семья Касымовых",
			Code: "KAS2024",
			Members: []models.FamilyMember{
				{ID: "1", Name: "Айгуль", BirthDate: "1985-03-15", Relationship: "Я"},
				{ID: "2", Name: "Нурлан", BirthDate: "1982-07-22", Relationship: "Супруг"},
				{ID: "3", Name: "Арман", BirthDate: "2010-11-08", Relationship: "Сын"},
				{ID: "4", Name: "Амина", BirthDate: "2013-05-12", Relationship: "Дочь"},
			},
			UnreadCount: 3,
			CreatedAt:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Description: "Наша дружная семья",
		},
		{
			ID:   "2",
			Name: "Большая семья",
			Code: "ULY2023",
			Members: []models.FamilyMember{
				{ID: "5", Name: "Касым ата", BirthDate: "1955-01-10", Relationship: "Отец"},
				{ID: "6", Name: "Гульнар апа", BirthDate: "1958-09-03", Relationship: "Мать"},
				{ID: "7", Name: "Серик", BirthDate: "1980-06-18", Relationship: "Брат"},
				{ID: "8", Name: "Мадина", BirthDate: "1978-12-25", Relationship: "Сестра"},
			},
			UnreadCount: 1,
			CreatedAt:   time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			Description: "Все члены большой семьи",
		},
		{
			ID:   "3",
			Name: "Группа родственников",
			Code: "TUY2024",
			Members: []models.FamilyMember{
				{ID: "9", Name: "Болат", BirthDate: "1975-04-12", Relationship: "Родственник"},
				{ID: "10", Name: "Алма", BirthDate: "1977-08-30", Relationship: "Родственница"},
			},
			UnreadCount: 0,
			CreatedAt:   time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			Description: "Связь с родственниками",
		},
	}
}

func seedMessages(now time.Time) []models.Message {
	return []models.Message{
		{
			ID:         "1",
			Text:       "У нас все хорошо! Как дела у вас?",
			SenderID:   "1",
			SenderName: "Айгуль",
			Timestamp:  now.Add(-30 * time.Minute),
			FamilyID:   "1",
		},
		{
			ID:         "2",
			Text:       "У нас тоже все хорошо! Дети хорошо учатся в школе",
			SenderID:   "2",
			SenderName: "Нурлан",
			Timestamp:  now.Add(-15 * time.Minute),
			FamilyID:   "1",
		},
		{
			ID:         "3",
			Text:       "Привет семья! Как проводите день?",
			SenderID:   "3",
			SenderName: "Арман",
			Timestamp:  now.Add(-1 * time.Hour),
			FamilyID:   "1",
		},
		{
			ID:         "4",
			Text:       "Мама, папа, завтра у нас в школе концерт!",
			SenderID:   "4",
			SenderName: "Амина",
			Timestamp:  now.Add(-30 * time.Minute),
			FamilyID:   "1",
		},
		{
			ID:         "5",
			Text:       "Внучата мои, скучаю по вам!",
			SenderID:   "5",
			SenderName: "Касым ата",
			Timestamp:  now.Add(-2 * time.Hour),
			FamilyID:   "2",
		},
	}
}

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "День рождения Армана",
			Description: "Нашему сыну исполняется 14 лет",
			Date:        "2024-11-08",
			Time:        "18:00",
			FamilyID:    "1",
			FamilyName:  "Семья Касымовых",
			CreatedBy:   "1",
		},
		{
			ID:          "2",
			Title:       "Семейная встреча",
			Description: "Встреча со всеми родственниками",
			Date:        "2024-04-20",
			Time:        "15:00",
			FamilyID:    "2",
			FamilyName:  "Большая семья",
			CreatedBy:   "5",
		},
		{
			ID:          "3",
			Title:       "Праздник Наурыз",
			Description: "Традиционное празднование Наурыза",
			Date:        "2024-03-22",
			Time:        "12:00",
			FamilyID:    "3",
			FamilyName:  "Группа родственников",
			CreatedBy:   "9",
		},
	}
}

func seedTasks(now time.Time) []models.Task {
	in2d := now.Add(2 * 24 * time.Hour)
	ago1d := now.Add(-24 * time.Hour)
	in5d := now.Add(5 * 24 * time.Hour)
	return []models.Task{
		{
			ID:             "1",
			Title:          "Уборка дома",
			Description:    "Генеральная уборка в выходные",
			Completed:      false,
			Priority:       models.PriorityMedium,
			AssignedTo:     "3",
			AssignedToName: "Арман",
			FamilyID:       "1",
			FamilyName:     "Семья Касымовых",
			CreatedBy:      "1",
			CreatedAt:      now.Add(-24 * time.Hour),
			DueDate:        &in2d,
		},
		{
			ID:             "2",
			Title:          "Покупка продуктов",
			Description:    "Закупка продуктов на неделю",
			Completed:      true,
			Priority:       models.PriorityHigh,
			AssignedTo:     "2",
			AssignedToName: "Нурлан",
			FamilyID:       "1",
			FamilyName:     "Семья Касымовых",
			CreatedBy:      "1",
			CreatedAt:      now.Add(-2 * 24 * time.Hour),
			DueDate:        &ago1d,
		},
		{
			ID:             "3",
			Title:          "Родительское собрание",
			Description:    "Собрание в школе у Армана",
			Completed:      false,
			Priority:       models.PriorityHigh,
			AssignedTo:     "1",
			AssignedToName: "Айгуль",
			FamilyID:       "1",
			FamilyName:     "Семья Касымовых",
			CreatedBy:      "2",
			CreatedAt:      now.Add(-3 * 24 * time.Hour),
			DueDate:        &in5d,
		},
	}
}

func seedAIMessages(now time.Time) []models.AIMessage {
	return []models.AIMessage{
		{
			ID:        "1",
			Text:      "Привет! Я ваш семейный ИИ помощник. Можете задать мне любой вопрос.",
			IsUser:    false,
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID:        "2",
			Text:      "Можете посоветовать полезные игры для детей?",
			IsUser:    true,
			Timestamp: now.Add(-50 * time.Minute),
			FamilyID:  "1",
		},
		{
			ID:        "3",
			Text:      "Конечно! Рекомендую следующие игры:\n\n1. Развивающие игры - пазлы, конструкторы\n2. Подвижные игры - прятки, игры с мячом\n3. Творческие - рисование, лепка\n4. Обучающие игры - словесные игры, математические головоломки\n\nВыбирайте в зависимости от возраста детей!",
			IsUser:    false,
			Timestamp: now.Add(-49 * time.Minute),
		},
	}
}

func seedCapsules(now time.Time) []models.TimeCapsule {
	return []models.TimeCapsule{
		{
			ID:            "1",
			Title:         "День рождения Армана",
			Message:       "Поздравляем нашего дорогого сына с 15-летием! Желаем здоровья, счастья и успехов в учебе!",
			FamilyID:      "1",
			FamilyName:    "Семья Касымовых",
			CreatedBy:     "1",
			CreatedByName: "Айгуль",
			CreatedAt:     now.Add(-30 * 24 * time.Hour),
			DeliveryDate:  time.Date(2024, time.November, 8, 10, 0, 0, 0, time.UTC),
			IsDelivered:   false,
		},
		{
			ID:            "2",
			Title:         "Новогоднее поздравление",
			Message:       "С Новым годом, дорогая семья! Пусть новый год принесет много радости и счастья!",
			MediaURL:      "https://via.placeholder.com/300x200/ff6b6b/ffffff?text=Happy+New+Year",
			MediaType:     models.MediaPhoto,
			FamilyID:      "2",
			FamilyName:    "Большая семья",
			CreatedBy:     "5",
			CreatedByName: "Касым ата",
			CreatedAt:     now.Add(-60 * 24 * time.Hour),
			DeliveryDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			IsDelivered:   false,
		},
		{
			ID:            "3",
			Title:         "Семейное фото",
			Message:       "Это наше семейное фото с прошлого лета. Какие мы были счастливые!",
			MediaURL:      "https://via.placeholder.com/300x200/4ade80/ffffff?text=Family+Photo",
			MediaType:     models.MediaPhoto,
			FamilyID:      "1",
			FamilyName:    "Семья Касымовых",
			CreatedBy:     "2",
			CreatedByName: "Нурлан",
			CreatedAt:     now.Add(-10 * 24 * time.Hour),
			DeliveryDate:  now.Add(7 * 24 * time.Hour),
			IsDelivered:   false,
		},
	}
}
