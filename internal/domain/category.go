package domain

// Category is a named classification that trigger phrases belong to.
type Category string

const (
	CategoryFitnessLevel Category = "fitness_level"
	CategoryGoalType     Category = "goal_type"
	CategoryHealth       Category = "health_constraints"
	CategoryLocation     Category = "location"
	CategorySchedule     Category = "schedule"
	CategoryEquipment    Category = "equipment"
	CategoryNutrition    Category = "nutrition"
	CategoryMotivation   Category = "motivation"
)

// CategorySpec is one entry of the static vocabulary: a category, its
// importance tier, and the literal phrases that indicate it.
type CategorySpec struct {
	Category Category
	Tier     ImportanceTier
	Label    string
	Triggers []string
}

// Catalog returns the built-in vocabulary for training-goal composition.
// Defined once at process start; never mutated.
func Catalog() []CategorySpec {
	return []CategorySpec{
		{
			Category: CategoryHealth,
			Tier:     TierCritical,
			Label:    "Health constraints",
			Triggers: []string{
				"injury", "injured", "bad knee", "knee pain", "back pain",
				"shoulder pain", "pregnant", "pregnancy", "asthma",
				"heart condition", "high blood pressure", "diabetes",
				"recovering from surgery", "physical therapy", "doctor said",
				"chronic pain", "arthritis",
			},
		},
		{
			Category: CategoryGoalType,
			Tier:     TierHigh,
			Label:    "Goal type",
			Triggers: []string{
				"lose weight", "weight loss", "build muscle", "gain muscle",
				"get stronger", "strength training", "run a marathon",
				"run a 5k", "half marathon", "improve endurance",
				"flexibility", "tone up", "get in shape", "stay fit",
				"cardio fitness", "muscle mass",
			},
		},
		{
			Category: CategoryFitnessLevel,
			Tier:     TierHigh,
			Label:    "Fitness level",
			Triggers: []string{
				"beginner", "complete beginner", "new to fitness",
				"just starting out", "never exercised", "intermediate",
				"advanced", "experienced", "former athlete", "out of shape",
				"getting back into", "used to train",
			},
		},
		{
			Category: CategoryLocation,
			Tier:     TierMedium,
			Label:    "Workout location",
			Triggers: []string{
				"at home", "home workout", "gym", "at the gym", "outdoors",
				"outside", "in the park", "fitness studio", "office",
				"while traveling", "hotel room",
			},
		},
		{
			Category: CategorySchedule,
			Tier:     TierMedium,
			Label:    "Schedule",
			Triggers: []string{
				"every day", "daily", "three times a week",
				"twice a week", "mornings", "in the morning", "evenings",
				"after work", "on weekends", "lunch break",
				"30 minutes a day", "an hour a day",
			},
		},
		{
			Category: CategoryEquipment,
			Tier:     TierMedium,
			Label:    "Equipment",
			Triggers: []string{
				"dumbbells", "kettlebell", "resistance bands", "barbell",
				"treadmill", "exercise bike", "rowing machine", "pull up bar",
				"no equipment", "bodyweight only", "yoga mat",
			},
		},
		{
			Category: CategoryNutrition,
			Tier:     TierLow,
			Label:    "Nutrition",
			Triggers: []string{
				"diet", "eating habits", "meal plan", "protein intake",
				"calories", "vegetarian", "vegan", "intermittent fasting",
				"cut sugar",
			},
		},
		{
			Category: CategoryMotivation,
			Tier:     TierLow,
			Label:    "Motivation",
			Triggers: []string{
				"wedding", "summer", "feel better", "more energy",
				"confidence", "stress relief", "sleep better",
				"keep up with my kids", "new year",
			},
		},
	}
}

// CatalogTier returns the tier of a category in the built-in catalog,
// or TierLow if the category is unknown.
func CatalogTier(c Category) ImportanceTier {
	for _, spec := range Catalog() {
		if spec.Category == c {
			return spec.Tier
		}
	}
	return TierLow
}

// CatalogLabel returns the display label for a category, falling back to
// the raw identifier.
func CatalogLabel(c Category) string {
	for _, spec := range Catalog() {
		if spec.Category == c {
			return spec.Label
		}
	}
	return string(c)
}
