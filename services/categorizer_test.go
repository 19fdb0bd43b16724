package services

import (
	"testing"

	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"Weekly groceries at Costco", models.CategoryGroceries},
		{"Pizza night", models.CategoryFood},
		{"DoorDash order", models.CategoryFood},
		{"October rent", models.CategoryRent},
		{"Electricity bill", models.CategoryUtilities},
		{"WiFi for the apartment", models.CategoryUtilities},
		{"Uber to the airport", models.CategoryTransport},
		{"Netflix subscription", models.CategoryEntertainment},
		{"Flight to Denver", models.CategoryTravel},
		{"Gym membership", models.CategoryHealth},
		{"IKEA shelf", models.CategoryShopping},
		{"Miscellaneous stuff", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Categorize(tc.description), "description: %q", tc.description)
	}
}
