package seed

import (
	"context"
	"fmt"

	"prayernotebook/internal/store"
	"prayernotebook/internal/utils"
	"prayernotebook/pkg/types"

	"github.com/k0kubun/pp/v3"
)

const demoUserID = 1

type summary struct {
	UserID     int64
	Categories []string
	PrayerIDs  []int64
	AnsweredID int64
}

// Run populates a demo notebook for user 1: three categories, a few
// prayers in each, and one prayer already marked answered. Intended for
// local development against a freshly migrated database; running it
// twice creates a second copy of everything.
func Run(ctx context.Context, categories *store.CategoryRepository, prayers *store.PrayerRepository) error {
	notebook := []struct {
		category types.NewCategory
		prayers  []types.NewPrayer
	}{
		{
			category: types.NewCategory{UserID: demoUserID, Name: "Family", Color: "#3B82F6"},
			prayers: []types.NewPrayer{
				{UserID: demoUserID, Title: "Peace at home", Description: "For patience and peace in our house"},
				{UserID: demoUserID, Title: "Grandma's visit", Description: "Safe travels next month", Notes: utils.StringPtr("Flying on the 14th")},
			},
		},
		{
			category: types.NewCategory{UserID: demoUserID, Name: "Health", Color: "#10B981"},
			prayers: []types.NewPrayer{
				{UserID: demoUserID, Title: "Surgery recovery", Description: "For full recovery after the operation"},
				{UserID: demoUserID, Title: "Better sleep", Description: "Rest well through the night"},
			},
		},
		{
			category: types.NewCategory{UserID: demoUserID, Name: "Gratitude", Color: "#F59E0B"},
			prayers: []types.NewPrayer{
				{UserID: demoUserID, Title: "New job", Description: "Thankful for the new position"},
			},
		},
	}

	result := summary{UserID: demoUserID}

	for _, entry := range notebook {
		categoryID, err := categories.CreateCategory(ctx, entry.category)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", entry.category.Name, err)
		}
		result.Categories = append(result.Categories, entry.category.Name)

		for _, prayer := range entry.prayers {
			prayer.CategoryID = categoryID
			prayerID, err := prayers.CreatePrayer(ctx, prayer)
			if err != nil {
				return fmt.Errorf("seed prayer %q: %w", prayer.Title, err)
			}
			result.PrayerIDs = append(result.PrayerIDs, prayerID)

			if entry.category.Name == "Health" && prayer.Title == "Surgery recovery" {
				result.AnsweredID = prayerID
			}
		}
	}

	if result.AnsweredID != 0 {
		notes := utils.StringPtr("Recovered fully, thank you")
		if _, err := prayers.MarkPrayerAnswered(ctx, result.AnsweredID, demoUserID, notes); err != nil {
			return fmt.Errorf("mark seeded prayer answered: %w", err)
		}
	}

	pp.Println(result)

	return nil
}
