package constants

// KeyPrefix namespaces every key written to the durable medium. A wipe removes
// every key that carries it.
const KeyPrefix = "lifeos_"

// Logical keys. Each feature owns exactly one of these.
const (
	KeyTasks            = "tasks"
	KeyHabits           = "habits"
	KeyWaterLogs        = "water_logs"
	KeyWaterGoal        = "water_goal"
	KeyWaterMilestones  = "water_milestones"
	KeyWaterSchedule    = "water_schedule"
	KeyMeals            = "meals"
	KeyMistakeGraveyard = "mistake_graveyard"
	KeyTimetable        = "timetable"
	KeyStrategies       = "strategies"
	KeyDiaryEntries     = "diary_entries"
	KeyVaultPin         = "vault_pin"
	KeyProfile          = "profile"
	KeyTheme            = "theme"
	KeySidebarHidden    = "sidebar_hidden"
)

// AllKeys lists every logical key in display order.
var AllKeys = []string{
	KeyTasks,
	KeyHabits,
	KeyWaterLogs,
	KeyWaterGoal,
	KeyWaterMilestones,
	KeyWaterSchedule,
	KeyMeals,
	KeyMistakeGraveyard,
	KeyTimetable,
	KeyStrategies,
	KeyDiaryEntries,
	KeyVaultPin,
	KeyProfile,
	KeyTheme,
	KeySidebarHidden,
}

// Default Settings Values
const (
	DefaultWaterGoalMl   = 4000
	DefaultTheme         = "dark"
	DefaultSidebarHidden = false
	DefaultTimezone      = "Local" // Use system local timezone by default

	DefaultMistakeChapter = "Misc"
	DefaultMealTime       = "00:00"

	DefaultSlotTime   = "08:00"
	DefaultSlotAmount = 250
	DefaultSlotLabel  = "Morning Sip"

	DefaultStrategyDays = 7

	// QuickSipMl is the amount logged by the one-key "drink" action.
	QuickSipMl = 250
)

// DefaultSubjects seed the mistake graveyard subject picker.
var DefaultSubjects = []string{"Physics", "Chemistry", "Maths"}

// DefaultTags seed the mistake graveyard cause picker.
var DefaultTags = []string{
	"Calculation Error",
	"Formula Memory Gap",
	"Concept Misunderstanding",
	"Time Pressure",
	"Question Misread",
}

// DefaultMistakeTag is preselected when burying a new mistake.
const DefaultMistakeTag = "Calculation Error"

// AllSubjects matches every subject in the graveyard filter.
const AllSubjects = "All"
