package gen

import "github.com/bpbull/soundcheck-analytics/internal/dataset"

var saleQuantities = []int{1, 2, 3, 4, 5, 6}
var saleQuantityWeights = []float64{0.2, 0.4, 0.15, 0.15, 0.05, 0.05}

// generateTicketSales synthesizes purchase transactions for every event
// with a known attendance, at an average of 2.5 tickets per sale.
func (g *Generator) generateTicketSales() error {
	counter := 1

	for _, event := range g.data.Events {
		if event.EstimatedAttendance == nil {
			continue
		}
		venue := g.venueIndex[event.VenueID]

		numSales := int(float64(*event.EstimatedAttendance) / 2.5)
		windowDays := int(event.Date.Sub(event.OnSaleDate).Hours() / 24)

		for i := 0; i < numSales; i++ {
			// Demand clusters at on-sale and right before the show:
			// 40% in the first week, then 30% of the rest in the
			// final week, the remainder spread through the middle.
			var daysAfterOnSale int
			if chance(g.rng, 0.4) {
				daysAfterOnSale = intBetween(g.rng, 0, 7)
			} else if chance(g.rng, 0.3) {
				daysAfterOnSale = windowDays - intBetween(g.rng, 0, 7)
			} else {
				daysAfterOnSale = intBetween(g.rng, 8, max(8, windowDays-8))
			}
			if daysAfterOnSale < 0 {
				daysAfterOnSale = 0
			}

			saleDate := event.OnSaleDate.AddDate(0, 0, daysAfterOnSale)

			ticketType := "general"
			unitPrice := event.BaseTicketPrice
			if event.VIPTicketPrice != nil && chance(g.rng, 0.15) {
				ticketType = "vip"
				unitPrice = *event.VIPTicketPrice
			}

			quantity := weightedPick(g.rng, saleQuantities, saleQuantityWeights)
			fees := round2(venue.TypicalTicketFee * float64(quantity))

			daysBefore := int(event.Date.Sub(saleDate).Hours() / 24)
			if daysBefore < 0 {
				daysBefore = 0
			}

			g.data.TicketSales = append(g.data.TicketSales, dataset.TicketSale{
				ID:              recordID("TKT", 5, counter),
				EventID:         event.ID,
				Date:            saleDate,
				DaysBeforeEvent: daysBefore,
				Quantity:        quantity,
				TicketType:      ticketType,
				UnitPrice:       unitPrice,
				Fees:            fees,
				TotalAmount:     round2(unitPrice*float64(quantity) + fees),
			})
			counter++
		}
	}

	g.log.Info().Int("sales", len(g.data.TicketSales)).Msg("ticket sales generated")
	return nil
}
