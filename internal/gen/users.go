package gen

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bpbull/soundcheck-analytics/internal/dataset"
)

var ageGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
var ageGroupWeights = []float64{0.30, 0.35, 0.20, 0.10, 0.05}

var profileCompleteness = []float64{0.25, 0.5, 0.75, 1.0}

func (g *Generator) generateUsers() error {
	n := g.cfg.Users
	powerCount := n * 10 / 100
	regularCount := n * 30 / 100
	casualCount := n - powerCount - regularCount

	// Every fake account shares one hash; cost stays at the minimum
	// because nobody logs in with these.
	hash, err := bcrypt.GenerateFromPassword([]byte("soundcheck-demo"), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	counter := 1
	segments := []struct {
		segment dataset.UserSegment
		count   int
	}{
		{dataset.SegmentPower, powerCount},
		{dataset.SegmentRegular, regularCount},
		{dataset.SegmentCasual, casualCount},
	}

	for _, s := range segments {
		for i := 0; i < s.count; i++ {
			city := pick(g.rng, g.data.Cities)

			// Strong scenes attract verified accounts.
			verifiedChance := 0.2
			if city.MusicSceneScore > 9 {
				verifiedChance = 0.5
			}
			userType := "regular"
			if chance(g.rng, verifiedChance) {
				userType = "verified"
			}

			ageGroup := weightedPick(g.rng, ageGroups, ageGroupWeights)

			numGenres := 3
			if s.segment != dataset.SegmentPower {
				numGenres = intBetween(g.rng, 1, 3)
			}
			preferred := g.userGenrePreferences(city.PrimaryGenres, ageGroup, numGenres)

			joinDate := g.joinDateFor(s.segment)

			user := dataset.User{
				ID:                  recordID("USR", 5, counter),
				Username:            randomUsername(g.rng),
				Email:               randomEmail(g.rng, counter),
				PasswordHash:        string(hash),
				Type:                userType,
				Segment:             s.segment,
				JoinDate:            joinDate,
				HomeCity:            city.Name,
				HomeState:           city.State,
				AgeGroup:            ageGroup,
				PreferredGenres:     preferred,
				ProfileCompleteness: pick(g.rng, profileCompleteness),
				EmailVerified:       chance(g.rng, 0.7),
				PushNotifications:   chance(g.rng, 0.4),
				LastActiveDate:      dateBetween(g.rng, joinDate, g.now),
			}

			g.data.Users = append(g.data.Users, user)
			g.userRatingCounts[user.ID] = 0
			counter++
		}
	}
	return nil
}

// joinDateFor picks a join date window per segment: power users are
// early adopters, casual users arrive late.
func (g *Generator) joinDateFor(segment dataset.UserSegment) time.Time {
	switch segment {
	case dataset.SegmentPower:
		return dateBetween(g.rng, g.now.AddDate(-5, 0, 0), g.now.AddDate(-2, 0, 0))
	case dataset.SegmentRegular:
		return dateBetween(g.rng, g.now.AddDate(-3, 0, 0), g.now.AddDate(0, -6, 0))
	default:
		return dateBetween(g.rng, g.now.AddDate(-2, 0, 0), g.now)
	}
}

// userGenrePreferences blends the home city's scene, an age-group bias,
// and a couple of random picks for diversity.
func (g *Generator) userGenrePreferences(cityGenres []string, ageGroup string, numGenres int) []string {
	potential := make([]string, 0, len(cityGenres)+6)
	potential = append(potential, cityGenres...)
	potential = append(potential, ageGenreBias[ageGroup]...)
	potential = append(potential, pick(g.rng, primaryGenres), pick(g.rng, primaryGenres))
	potential = dedupe(potential)

	if numGenres > len(potential) {
		numGenres = len(potential)
	}
	return sampleWithout(g.rng, potential, numGenres, nil)
}
