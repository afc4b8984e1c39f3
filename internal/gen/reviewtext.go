package gen

import "math/rand"

// Review copy pools keyed by score bracket.

var reviewPools = []struct {
	minScore float64
	titles   []string
	texts    []string
}{
	{
		minScore: 4.5,
		titles: []string{
			"Amazing show!", "Best concert ever!", "Incredible performance!",
			"Mind-blowing!", "Unforgettable night!", "Absolutely phenomenal!",
		},
		texts: []string{
			"The energy was electric from start to finish. The band was on fire and the crowd was totally into it.",
			"Perfect setlist, amazing sound quality, and incredible stage presence. Couldn't ask for more!",
			"This is why live music matters. An absolutely transcendent experience.",
		},
	},
	{
		minScore: 3.5,
		titles: []string{
			"Great show", "Really enjoyed it", "Solid performance",
			"Good night out", "Worth seeing", "Entertaining show",
		},
		texts: []string{
			"Overall a good show with a few minor issues. The band played well and the venue was decent.",
			"Enjoyed the performance though the sound could have been better. Still recommend seeing them live.",
			"Good energy from the band, crowd was into it. Venue was a bit crowded but manageable.",
		},
	},
	{
		minScore: 2.5,
		titles: []string{
			"Just okay", "Mixed feelings", "Could've been better",
			"Average show", "Some issues", "Meh",
		},
		texts: []string{
			"The performance was okay but nothing special. Sound issues throughout the night.",
			"Band seemed tired, setlist was predictable. Venue was overcrowded.",
			"Expected more based on their recordings. Live performance was disappointing.",
		},
	},
	{
		minScore: 0,
		titles: []string{
			"Disappointing", "Not worth it", "Poor experience",
			"Skip this one", "Waste of money", "Terrible",
		},
		texts: []string{
			"Major sound problems, could barely hear the vocals. Band seemed unprepared.",
			"Venue was a disaster - oversold, no air conditioning, terrible acoustics.",
			"Band showed up late, played for 45 minutes, no encore. Complete waste of time and money.",
		},
	},
}

func reviewTextFor(rng *rand.Rand, score float64) (title, text string) {
	for _, pool := range reviewPools {
		if score >= pool.minScore {
			return pick(rng, pool.titles), pick(rng, pool.texts)
		}
	}
	last := reviewPools[len(reviewPools)-1]
	return pick(rng, last.titles), pick(rng, last.texts)
}

var venueReviewTexts = []struct {
	minRating float64
	texts     []string
}{
	{
		minRating: 4,
		texts: []string{
			"Great venue with excellent sightlines and amazing acoustics.",
			"Easy to get to, plenty of parking, staff was super helpful. Will definitely come back!",
			"One of the best venues in the city. Sound quality is consistently excellent.",
		},
	},
	{
		minRating: 3,
		texts: []string{
			"Decent venue but drinks are overpriced. Sound quality varies depending on where you stand.",
			"Good location but parking is a nightmare. Arrive early or take public transport.",
			"Nice venue but gets very crowded. Bathrooms could be cleaner.",
		},
	},
	{
		minRating: 0,
		texts: []string{
			"Poor acoustics, overcrowded, and overpriced everything. There are better venues in town.",
			"Terrible sightlines unless you're right up front. Drinks are ridiculously expensive.",
			"Avoid if possible. Bad sound, rude staff, and the whole place needs renovation.",
		},
	},
}

func venueReviewTextFor(rng *rand.Rand, rating float64) string {
	for _, pool := range venueReviewTexts {
		if rating >= pool.minRating {
			return pick(rng, pool.texts)
		}
	}
	return pick(rng, venueReviewTexts[len(venueReviewTexts)-1].texts)
}
