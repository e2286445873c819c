package database

import (
	"github.com/BuiTuanAnh2001/english-learning-app-sub001/internal/entity"
	"gorm.io/gorm"
)

// SeedLessons inserts the starter lessons. It is idempotent: when any lesson
// already exists the seeder does nothing, so reruns on startup are safe.
func SeedLessons(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Lesson{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, lesson := range lessonSeedData() {
		if err := db.Create(&lesson).Error; err != nil {
			return err
		}
	}

	return nil
}

func lessonSeedData() []entity.Lesson {
	return []entity.Lesson{
		{
			Slug:        "basic-greetings",
			Title:       "Basic Greetings",
			Description: "Say hello and goodbye, and introduce yourself in everyday situations.",
			Level:       "beginner",
			Duration:    "15 min",
			Category:    "daily-conversation",
			Vocabulary: []entity.VocabularyItem{
				{Position: 1, Word: "Hello", Pronunciation: "/həˈloʊ/", Meaning: "Xin chào", Example: "Hello, my name is Lan.", Tags: "greeting,basic"},
				{Position: 2, Word: "Goodbye", Pronunciation: "/ɡʊdˈbaɪ/", Meaning: "Tạm biệt", Example: "Goodbye, see you tomorrow.", Tags: "greeting,basic"},
				{Position: 3, Word: "Thanks", Pronunciation: "/θæŋks/", Meaning: "Cảm ơn", Example: "Thanks for your help.", Tags: "politeness,basic"},
				{Position: 4, Word: "Sorry", Pronunciation: "/ˈsɑːri/", Meaning: "Xin lỗi", Example: "Sorry, I am late.", Tags: "politeness,basic"},
				{Position: 5, Word: "Morning", Pronunciation: "/ˈmɔːrnɪŋ/", Meaning: "Buổi sáng", Example: "Good morning, everyone.", Tags: "time,basic"},
				{Position: 6, Word: "Friend", Pronunciation: "/frend/", Meaning: "Bạn bè", Example: "This is my friend Minh.", Tags: "people,basic"},
			},
			Phrases: []entity.Phrase{
				{Position: 1, Text: "How are you?", Meaning: "Bạn khỏe không?", Example: "Hi Mai! How are you?", UsageContext: "Asking about someone's wellbeing"},
				{Position: 2, Text: "Nice to meet you", Meaning: "Rất vui được gặp bạn", Example: "I'm Anna. Nice to meet you.", UsageContext: "Meeting someone for the first time"},
				{Position: 3, Text: "See you later", Meaning: "Hẹn gặp lại", Example: "I have to go now. See you later!", UsageContext: "Casual goodbye"},
				{Position: 4, Text: "Long time no see", Meaning: "Lâu rồi không gặp", Example: "Hey Tuan, long time no see!", UsageContext: "Greeting someone after a long time"},
			},
			Dialogue: []entity.DialogueTurn{
				{Position: 1, Speaker: "Anna", Text: "Hello! How are you?", Translation: "Xin chào! Bạn khỏe không?", Emotion: "friendly", Gender: "female"},
				{Position: 2, Speaker: "Minh", Text: "I'm fine, thanks. And you?", Translation: "Mình khỏe, cảm ơn. Còn bạn?", Emotion: "friendly", Gender: "male"},
				{Position: 3, Speaker: "Anna", Text: "Great! Nice to meet you.", Translation: "Tuyệt! Rất vui được gặp bạn.", Emotion: "happy", Gender: "female"},
				{Position: 4, Speaker: "Minh", Text: "Nice to meet you too. See you later!", Translation: "Mình cũng rất vui được gặp bạn. Hẹn gặp lại!", Emotion: "happy", Gender: "male"},
			},
		},
		{
			Slug:        "ordering-food",
			Title:       "Ordering Food",
			Description: "Order meals and drinks at a restaurant and ask for the bill.",
			Level:       "beginner",
			Duration:    "20 min",
			Category:    "dining",
			Vocabulary: []entity.VocabularyItem{
				{Position: 1, Word: "Menu", Pronunciation: "/ˈmenjuː/", Meaning: "Thực đơn", Example: "Can I see the menu, please?", Tags: "restaurant,basic"},
				{Position: 2, Word: "Water", Pronunciation: "/ˈwɔːtər/", Meaning: "Nước", Example: "A glass of water, please.", Tags: "drink,basic"},
				{Position: 3, Word: "Delicious", Pronunciation: "/dɪˈlɪʃəs/", Meaning: "Ngon", Example: "This soup is delicious.", Tags: "food,adjective"},
				{Position: 4, Word: "Bill", Pronunciation: "/bɪl/", Meaning: "Hóa đơn", Example: "Could we have the bill, please?", Tags: "restaurant,money"},
				{Position: 5, Word: "Waiter", Pronunciation: "/ˈweɪtər/", Meaning: "Người phục vụ", Example: "The waiter brought our drinks.", Tags: "restaurant,people"},
				{Position: 6, Word: "Spicy", Pronunciation: "/ˈspaɪsi/", Meaning: "Cay", Example: "Is this dish very spicy?", Tags: "food,adjective"},
			},
			Phrases: []entity.Phrase{
				{Position: 1, Text: "I would like to order", Meaning: "Tôi muốn gọi món", Example: "I would like to order the grilled chicken.", UsageContext: "Placing an order"},
				{Position: 2, Text: "Can I have the bill?", Meaning: "Cho tôi xin hóa đơn?", Example: "Excuse me, can I have the bill?", UsageContext: "Asking to pay"},
				{Position: 3, Text: "What do you recommend?", Meaning: "Bạn gợi ý món gì?", Example: "Everything looks good. What do you recommend?", UsageContext: "Asking for a suggestion"},
				{Position: 4, Text: "Nothing for me, thanks", Meaning: "Tôi không dùng gì, cảm ơn", Example: "Any dessert? Nothing for me, thanks.", UsageContext: "Declining politely"},
			},
			Dialogue: []entity.DialogueTurn{
				{Position: 1, Speaker: "Waiter", Text: "Good evening! Are you ready to order?", Translation: "Chào buổi tối! Quý khách gọi món chưa ạ?", Emotion: "polite", Gender: "male"},
				{Position: 2, Speaker: "Linh", Text: "Yes, I would like to order the beef noodles.", Translation: "Vâng, tôi muốn gọi món phở bò.", Emotion: "neutral", Gender: "female"},
				{Position: 3, Speaker: "Waiter", Text: "Anything to drink?", Translation: "Quý khách dùng đồ uống gì không ạ?", Emotion: "polite", Gender: "male"},
				{Position: 4, Speaker: "Linh", Text: "A glass of water, please. Thanks!", Translation: "Cho tôi một ly nước. Cảm ơn!", Emotion: "friendly", Gender: "female"},
			},
		},
		{
			Slug:        "job-interview",
			Title:       "Job Interview",
			Description: "Talk about your experience and strengths in an interview.",
			Level:       "intermediate",
			Duration:    "25 min",
			Category:    "work",
			Vocabulary: []entity.VocabularyItem{
				{Position: 1, Word: "Experience", Pronunciation: "/ɪkˈspɪriəns/", Meaning: "Kinh nghiệm", Example: "I have three years of experience in sales.", Tags: "work,noun"},
				{Position: 2, Word: "Strength", Pronunciation: "/streŋθ/", Meaning: "Điểm mạnh", Example: "My biggest strength is teamwork.", Tags: "work,noun"},
				{Position: 3, Word: "Salary", Pronunciation: "/ˈsæləri/", Meaning: "Mức lương", Example: "The salary is negotiable.", Tags: "work,money"},
				{Position: 4, Word: "Deadline", Pronunciation: "/ˈdedlaɪn/", Meaning: "Hạn chót", Example: "I always finish my work before the deadline.", Tags: "work,time"},
				{Position: 5, Word: "Teamwork", Pronunciation: "/ˈtiːmwɜːrk/", Meaning: "Làm việc nhóm", Example: "Good teamwork makes projects easier.", Tags: "work,skill"},
				{Position: 6, Word: "Responsible", Pronunciation: "/rɪˈspɑːnsəbl/", Meaning: "Có trách nhiệm", Example: "I was responsible for the monthly report.", Tags: "work,adjective"},
			},
			Phrases: []entity.Phrase{
				{Position: 1, Text: "Tell me about yourself", Meaning: "Hãy giới thiệu về bản thân bạn", Example: "Let's start. Tell me about yourself.", UsageContext: "Common opening question"},
				{Position: 2, Text: "I'm a quick learner", Meaning: "Tôi học hỏi nhanh", Example: "I'm a quick learner and adapt well to change.", UsageContext: "Describing strengths"},
				{Position: 3, Text: "Why do you want this job?", Meaning: "Tại sao bạn muốn công việc này?", Example: "Why do you want this job at our company?", UsageContext: "Motivation question"},
				{Position: 4, Text: "Do you have any questions for us?", Meaning: "Bạn có câu hỏi nào cho chúng tôi không?", Example: "That's all from me. Do you have any questions for us?", UsageContext: "Closing an interview"},
			},
			Dialogue: []entity.DialogueTurn{
				{Position: 1, Speaker: "Interviewer", Text: "Thanks for coming. Tell me about yourself.", Translation: "Cảm ơn bạn đã đến. Hãy giới thiệu về bản thân.", Emotion: "neutral", Gender: "female"},
				{Position: 2, Speaker: "Nam", Text: "I have two years of experience as a designer.", Translation: "Tôi có hai năm kinh nghiệm làm thiết kế.", Emotion: "confident", Gender: "male"},
				{Position: 3, Speaker: "Interviewer", Text: "What is your biggest strength?", Translation: "Điểm mạnh lớn nhất của bạn là gì?", Emotion: "neutral", Gender: "female"},
				{Position: 4, Speaker: "Nam", Text: "I'm a quick learner and I never miss a deadline.", Translation: "Tôi học hỏi nhanh và không bao giờ trễ hạn chót.", Emotion: "confident", Gender: "male"},
			},
		},
	}
}
