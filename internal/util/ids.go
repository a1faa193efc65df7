package util

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns an opaque identifier for newly created records. The
// fallback store assigns these itself; the remote database path assigns ids
// through the model's BeforeCreate hook instead.
func GenerateID() string {
	return uuid.New().String()
}

var usernameAdjectives = []string{
	"Smart", "Clever", "Bright", "Quick", "Sharp", "Wise", "Bold", "Swift",
	"Keen", "Alert", "Agile", "Brave", "Cool", "Epic", "Fast", "Great",
	"Happy", "Lucky", "Magic", "Noble", "Power", "Royal", "Super", "Ultra",
	"Mega", "Prime", "Elite", "Pro", "Star", "Ace", "Top", "Max",
}

var usernameNouns = []string{
	"Learner", "Scholar", "Genius", "Master", "Expert", "Wizard", "Hero",
	"Champion", "Player", "Gamer", "Seeker", "Hunter", "Explorer", "Finder",
	"Solver", "Thinker", "Creator", "Builder", "Maker", "Coder", "Hacker",
	"Ninja", "Warrior", "Knight", "Guardian", "Defender", "Ranger", "Scout",
	"Pioneer", "Voyager", "Traveler", "Adventurer",
}

var usernameRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateUniqueUsername composes a display name like "SmartLearner4821".
// Uniqueness against existing users is not checked; the suffix range keeps
// collisions unlikely for the audiences this serves.
func GenerateUniqueUsername() string {
	adjective := usernameAdjectives[usernameRand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[usernameRand.Intn(len(usernameNouns))]
	number := usernameRand.Intn(9999) + 1
	return fmt.Sprintf("%s%s%d", adjective, noun, number)
}

// TodayDate returns the current date as YYYY-MM-DD, the format hot_date is
// stored in.
func TodayDate() string {
	return time.Now().Format("2006-01-02")
}
