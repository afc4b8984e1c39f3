package gen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Word pools.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	"Anthony", "Betty", "Mark", "Sandra", "Steven", "Ashley", "Andrew", "Emily",
	"Joshua", "Donna", "Kevin", "Michelle", "Brian", "Amanda", "George", "Melissa",
	"Eric", "Stephanie", "Jason", "Rebecca", "Ryan", "Laura", "Jacob", "Hannah",
	"Tyler", "Megan", "Aaron", "Olivia", "Nathan", "Sophia", "Peter", "Grace",
	"Sean", "Victoria", "Austin", "Natalie", "Jesse", "Charlotte", "Dylan", "Marie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
	"Clark", "Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
	"Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams", "Nelson",
	"Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts", "Evans",
	"Turner", "Diaz", "Parker", "Cruz", "Edwards", "Collins", "Stewart", "Morris",
	"Murphy", "Cook", "Rogers", "Morgan", "Cooper", "Peterson", "Bailey", "Reed",
}

var plainWords = []string{
	"echo", "velvet", "harbor", "ember", "static", "mirror", "summit", "canyon",
	"delta", "prism", "meadow", "signal", "marble", "copper", "juniper", "lantern",
	"meridian", "cobalt", "willow", "tempest", "horizon", "cinder", "atlas", "coral",
	"monarch", "ivory", "quartz", "sable", "zephyr", "harvest", "mosaic", "driftwood",
}

var artistAdjectives = []string{
	"Electric", "Cosmic", "Velvet", "Crimson", "Silver", "Golden", "Midnight",
	"Neon", "Crystal", "Shadow", "Wild", "Silent", "Broken", "Lost", "Flying",
}

var artistNouns = []string{
	"Wolves", "Tigers", "Eagles", "Ghosts", "Dreams", "Waves", "Stars",
	"Lights", "Shadows", "Hearts", "Souls", "Minds", "Riders", "Drifters",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "fastmail.com", "aol.com", "example.com",
}

var ticketVendors = []string{"Ticketmaster", "AXS", "SeatGeek", "Venue Box Office", "Dice"}

var cancellationReasons = []string{
	"illness", "weather", "low ticket sales", "production issues", "scheduling conflict",
}

var tourTypes = []string{"headlining", "co-headlining", "supporting", "festival"}

var tourFrequencies = []string{"rare", "occasional", "moderate", "frequent", "constant"}

// Name builders.

func titleWord(rng *rand.Rand) string {
	w := pick(rng, plainWords)
	return strings.ToUpper(w[:1]) + w[1:]
}

func randomUsername(rng *rand.Rand) string {
	switch rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%s_%s%d", strings.ToLower(pick(rng, firstNames)),
			strings.ToLower(pick(rng, lastNames)), 1+rng.Intn(99))
	case 1:
		return fmt.Sprintf("%s%d", strings.ToLower(pick(rng, firstNames)), 1+rng.Intn(999))
	case 2:
		return fmt.Sprintf("music_%s_%d", pick(rng, plainWords), 1+rng.Intn(99))
	default:
		prefix := pick(rng, []string{"concert", "live", "music", "show"})
		return fmt.Sprintf("%s_%s%d", prefix, pick(rng, plainWords), 1+rng.Intn(999))
	}
}

func randomEmail(rng *rand.Rand, rowID int) string {
	return fmt.Sprintf("%s.%s_%d@%s",
		strings.ToLower(pick(rng, firstNames)),
		strings.ToLower(pick(rng, lastNames)),
		rowID,
		pick(rng, emailDomains),
	)
}

func randomArtistName(rng *rand.Rand) string {
	switch rng.Intn(7) {
	case 0:
		return fmt.Sprintf("The %s %s", pick(rng, artistAdjectives), pick(rng, artistNouns))
	case 1:
		return fmt.Sprintf("%s and the %s", pick(rng, firstNames), pick(rng, artistNouns))
	case 2:
		noun := pick(rng, artistNouns)
		return fmt.Sprintf("%s %s", pick(rng, artistAdjectives), noun[:len(noun)-1])
	case 3:
		return "The " + pick(rng, artistNouns)
	case 4:
		return pick(rng, firstNames) + " " + pick(rng, lastNames)
	case 5:
		return pick(rng, lastNames)
	default:
		return strings.ToLower(pick(rng, artistAdjectives)) + strings.ToLower(pick(rng, artistNouns))
	}
}

func randomStreetAddress(rng *rand.Rand) string {
	kind := pick(rng, []string{"St", "Ave", "Blvd", "Dr"})
	return fmt.Sprintf("%d %s %s", 1+rng.Intn(9999), pick(rng, lastNames), kind)
}

func randomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", 200+rng.Intn(799), rng.Intn(1000), rng.Intn(10000))
}

func randomZip(rng *rand.Rand) string {
	return fmt.Sprintf("%05d", rng.Intn(100000))
}
