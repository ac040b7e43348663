package services

import (
	"math/rand"

	"github.com/Uviii9p/Health-Hub/models"
)

// CatalogService serves the built-in read-only content: workout programs,
// meal suggestions, breathing exercises, mood options, quotes and tips.
type CatalogService struct{}

func NewCatalogService() *CatalogService { return &CatalogService{} }

func (s *CatalogService) Workouts() []models.WorkoutProgram { return workoutPrograms }

func (s *CatalogService) MealSuggestions() []models.MealSuggestion { return mealSuggestions }

func (s *CatalogService) BreathingExercises() []models.BreathingExercise { return breathingExercises }

// BreathingExercise looks one exercise up by id.
func (s *CatalogService) BreathingExercise(id int) (models.BreathingExercise, bool) {
	for _, ex := range breathingExercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.BreathingExercise{}, false
}

func (s *CatalogService) MoodOptions() []models.MoodOption { return moodOptions }

func (s *CatalogService) RandomQuote() models.Quote {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}

func (s *CatalogService) RandomTip() string {
	return healthTips[rand.Intn(len(healthTips))]
}

var workoutPrograms = []models.WorkoutProgram{
	{
		ID: 1, Name: "Morning Stretch", Duration: 10, Calories: 30, Difficulty: "Easy", Category: "Stretching",
		Exercises: []models.Exercise{
			{Name: "Neck Rolls", Reps: "10 each direction"},
			{Name: "Shoulder Shrugs", Reps: "15 reps"},
			{Name: "Cat-Cow Stretch", Reps: "10 reps"},
			{Name: "Hamstring Stretch", Reps: "30 sec each"},
			{Name: "Hip Circles", Reps: "10 each direction"},
		},
	},
	{
		ID: 2, Name: "Full Body Cardio", Duration: 20, Calories: 150, Difficulty: "Medium", Category: "Cardio",
		Exercises: []models.Exercise{
			{Name: "Jumping Jacks", Reps: "30 reps"},
			{Name: "High Knees", Reps: "30 sec"},
			{Name: "Burpees", Reps: "10 reps"},
			{Name: "Mountain Climbers", Reps: "30 sec"},
			{Name: "Squat Jumps", Reps: "15 reps"},
		},
	},
	{
		ID: 3, Name: "Core Strength", Duration: 15, Calories: 100, Difficulty: "Medium", Category: "Strength",
		Exercises: []models.Exercise{
			{Name: "Plank", Reps: "45 sec"},
			{Name: "Crunches", Reps: "20 reps"},
			{Name: "Bicycle Crunches", Reps: "20 reps"},
			{Name: "Leg Raises", Reps: "15 reps"},
			{Name: "Russian Twists", Reps: "20 reps"},
		},
	},
	{
		ID: 4, Name: "Relaxing Yoga", Duration: 25, Calories: 80, Difficulty: "Easy", Category: "Yoga",
		Exercises: []models.Exercise{
			{Name: "Child's Pose", Reps: "1 min"},
			{Name: "Downward Dog", Reps: "1 min"},
			{Name: "Warrior I", Reps: "30 sec each"},
			{Name: "Tree Pose", Reps: "30 sec each"},
			{Name: "Corpse Pose", Reps: "3 min"},
		},
	},
	{
		ID: 5, Name: "Upper Body Blast", Duration: 20, Calories: 120, Difficulty: "Hard", Category: "Strength",
		Exercises: []models.Exercise{
			{Name: "Push-ups", Reps: "15 reps"},
			{Name: "Diamond Push-ups", Reps: "10 reps"},
			{Name: "Tricep Dips", Reps: "15 reps"},
			{Name: "Pike Push-ups", Reps: "10 reps"},
			{Name: "Plank Shoulder Taps", Reps: "20 reps"},
		},
	},
	{
		ID: 6, Name: "Lower Body Power", Duration: 25, Calories: 180, Difficulty: "Hard", Category: "Strength",
		Exercises: []models.Exercise{
			{Name: "Squats", Reps: "20 reps"},
			{Name: "Lunges", Reps: "15 each leg"},
			{Name: "Glute Bridges", Reps: "20 reps"},
			{Name: "Calf Raises", Reps: "25 reps"},
			{Name: "Wall Sit", Reps: "45 sec"},
		},
	},
}

var mealSuggestions = []models.MealSuggestion{
	{ID: 1, Name: "Greek Yogurt Bowl", MealTime: models.MealBreakfast, Calories: 350, Protein: 20, Carbs: 45, Fat: 8, Image: "🥣",
		Ingredients: []string{"Greek yogurt", "Honey", "Mixed berries", "Granola", "Chia seeds"}},
	{ID: 2, Name: "Avocado Toast", MealTime: models.MealBreakfast, Calories: 380, Protein: 12, Carbs: 35, Fat: 22, Image: "🥑",
		Ingredients: []string{"Whole grain bread", "Avocado", "Eggs", "Cherry tomatoes", "Feta cheese"}},
	{ID: 3, Name: "Grilled Chicken Salad", MealTime: models.MealLunch, Calories: 420, Protein: 35, Carbs: 25, Fat: 18, Image: "🥗",
		Ingredients: []string{"Grilled chicken breast", "Mixed greens", "Cucumbers", "Tomatoes", "Olive oil dressing"}},
	{ID: 4, Name: "Quinoa Buddha Bowl", MealTime: models.MealLunch, Calories: 480, Protein: 18, Carbs: 65, Fat: 15, Image: "🍲",
		Ingredients: []string{"Quinoa", "Roasted vegetables", "Chickpeas", "Tahini dressing", "Fresh herbs"}},
	{ID: 5, Name: "Salmon with Vegetables", MealTime: models.MealDinner, Calories: 520, Protein: 40, Carbs: 30, Fat: 25, Image: "🐟",
		Ingredients: []string{"Baked salmon", "Roasted broccoli", "Sweet potato", "Lemon", "Garlic"}},
	{ID: 6, Name: "Vegetable Stir Fry", MealTime: models.MealDinner, Calories: 380, Protein: 15, Carbs: 45, Fat: 12, Image: "🥦",
		Ingredients: []string{"Tofu", "Mixed vegetables", "Brown rice", "Soy sauce", "Ginger"}},
	{ID: 7, Name: "Protein Smoothie", MealTime: models.MealSnack, Calories: 280, Protein: 25, Carbs: 35, Fat: 5, Image: "🥤",
		Ingredients: []string{"Protein powder", "Banana", "Almond milk", "Peanut butter", "Spinach"}},
	{ID: 8, Name: "Mixed Nuts & Fruit", MealTime: models.MealSnack, Calories: 200, Protein: 6, Carbs: 20, Fat: 12, Image: "🥜",
		Ingredients: []string{"Almonds", "Walnuts", "Dried cranberries", "Dark chocolate chips"}},
}

var breathingExercises = []models.BreathingExercise{
	{
		ID: 1, Name: "Box Breathing", Duration: 4,
		Description: "Inhale 4s, Hold 4s, Exhale 4s, Hold 4s",
		Pattern:     models.BreathingPattern{Inhale: 4, Hold1: 4, Exhale: 4, Hold2: 4},
		Benefits:    "Reduces stress and improves focus",
	},
	{
		ID: 2, Name: "4-7-8 Technique", Duration: 5,
		Description: "Inhale 4s, Hold 7s, Exhale 8s",
		Pattern:     models.BreathingPattern{Inhale: 4, Hold1: 7, Exhale: 8, Hold2: 0},
		Benefits:    "Promotes relaxation and better sleep",
	},
	{
		ID: 3, Name: "Deep Belly Breathing", Duration: 3,
		Description: "Deep diaphragmatic breathing",
		Pattern:     models.BreathingPattern{Inhale: 4, Hold1: 2, Exhale: 6, Hold2: 0},
		Benefits:    "Activates parasympathetic nervous system",
	},
}

var moodOptions = []models.MoodOption{
	{Value: 5, Label: "Excellent", Emoji: "😊", Color: "#4caf50"},
	{Value: 4, Label: "Good", Emoji: "🙂", Color: "#8bc34a"},
	{Value: 3, Label: "Okay", Emoji: "😐", Color: "#ffc107"},
	{Value: 2, Label: "Low", Emoji: "😔", Color: "#ff9800"},
	{Value: 1, Label: "Stressed", Emoji: "😫", Color: "#f44336"},
}

var motivationalQuotes = []models.Quote{
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{Text: "The greatest wealth is health.", Author: "Virgil"},
	{Text: "Happiness is the highest form of health.", Author: "Dalai Lama"},
	{Text: "Health is not valued till sickness comes.", Author: "Thomas Fuller"},
	{Text: "A healthy outside starts from the inside.", Author: "Robert Urich"},
	{Text: "Your body hears everything your mind says.", Author: "Naomi Judd"},
	{Text: "Sleep is the best meditation.", Author: "Dalai Lama"},
	{Text: "Movement is a medicine for creating change.", Author: "Carol Welch"},
	{Text: "The first wealth is health.", Author: "Ralph Waldo Emerson"},
	{Text: "Early to bed and early to rise makes a person healthy, wealthy and wise.", Author: "Benjamin Franklin"},
}

var healthTips = []string{
	"Drink a glass of water first thing in the morning",
	"Take a 5-minute stretching break every hour",
	"Practice deep breathing for 2 minutes when stressed",
	"Walk 10,000 steps today for better cardiovascular health",
	"Eat a variety of colorful vegetables with each meal",
	"Get 7-9 hours of quality sleep tonight",
	"Take the stairs instead of the elevator",
	"Limit screen time 1 hour before bedtime",
	"Practice gratitude by listing 3 things you're thankful for",
	"Stay hydrated - aim for 8 glasses of water daily",
}
