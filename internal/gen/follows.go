package gen

import "github.com/bpbull/soundcheck-analytics/internal/dataset"

// generateFollows links users to artists, 70% drawn from artists
// matching the user's preferred genres and the rest random discovery.
func (g *Generator) generateFollows() error {
	counter := 1

	for _, user := range g.data.Users {
		var numFollows int
		switch user.Segment {
		case dataset.SegmentPower:
			numFollows = intBetween(g.rng, 20, 100)
		case dataset.SegmentRegular:
			numFollows = intBetween(g.rng, 5, 20)
		default:
			numFollows = intBetween(g.rng, 1, 5)
		}

		preferred := make(map[string]struct{}, len(user.PreferredGenres))
		for _, genre := range user.PreferredGenres {
			preferred[genre] = struct{}{}
		}

		matchesGenre := func(a dataset.Artist) bool {
			if _, ok := preferred[a.GenrePrimary]; ok {
				return true
			}
			_, ok := preferred[a.GenreSecondary]
			return ok
		}

		genreTarget := numFollows * 70 / 100
		toFollow := sampleWithout(g.rng, g.data.Artists, genreTarget, func(a dataset.Artist) bool {
			return !matchesGenre(a)
		})

		chosen := make(map[string]struct{}, numFollows)
		for _, a := range toFollow {
			chosen[a.ID] = struct{}{}
		}

		if remaining := numFollows - len(toFollow); remaining > 0 {
			discovery := sampleWithout(g.rng, g.data.Artists, remaining, func(a dataset.Artist) bool {
				_, already := chosen[a.ID]
				return already
			})
			toFollow = append(toFollow, discovery...)
		}

		for _, artist := range toFollow {
			g.data.Follows = append(g.data.Follows, dataset.Follow{
				ID:            recordID("FOL", 5, counter),
				UserID:        user.ID,
				ArtistID:      artist.ID,
				Date:          dateBetween(g.rng, user.JoinDate, g.now),
				Notifications: chance(g.rng, 0.3),
			})
			counter++
		}
	}

	g.log.Info().Int("follows", len(g.data.Follows)).Msg("user follows generated")
	return nil
}
