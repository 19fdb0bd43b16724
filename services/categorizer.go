package services

import (
	"strings"

	"github.com/nurlanmnn/roomate-sub001/models"
)

// categoryRules map description keywords to a category. First match
// wins, so more specific terms come before generic ones.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{models.CategoryGroceries, []string{"grocery", "groceries", "supermarket", "aldi", "lidl", "costco", "walmart", "trader joe"}},
	{models.CategoryFood, []string{"restaurant", "dinner", "lunch", "breakfast", "pizza", "sushi", "takeout", "coffee", "cafe", "food", "delivery", "doordash", "ubereats"}},
	{models.CategoryRent, []string{"rent", "lease", "landlord", "deposit"}},
	{models.CategoryUtilities, []string{"electric", "electricity", "water bill", "gas bill", "internet", "wifi", "heating", "utility", "utilities", "trash"}},
	{models.CategoryTransport, []string{"uber", "lyft", "taxi", "bus", "train", "metro", "fuel", "gas station", "parking"}},
	{models.CategoryEntertainment, []string{"movie", "cinema", "netflix", "spotify", "concert", "game", "party", "bar"}},
	{models.CategoryTravel, []string{"flight", "hotel", "airbnb", "trip", "vacation"}},
	{models.CategoryHealth, []string{"pharmacy", "doctor", "dentist", "gym", "medicine"}},
	{models.CategoryShopping, []string{"amazon", "ikea", "furniture", "clothes", "clothing"}},
}

// Categorize guesses an expense category from its description. It
// backs the insights breakdown when the client did not pick one.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}
